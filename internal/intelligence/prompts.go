package intelligence

// Prompts constrain the model to emit exactly the JSON shapes the services
// parse. The provider is not guaranteed to comply, which is why every
// response goes through llm.ExtractJSON with a validator.

const taskSyncSystemPrompt = `You are a task synchronizer for a BIM/Architecture project management dashboard. You respond only with valid JSON and never include explanations or markdown.`

const taskSyncPromptTemplate = `Generate %d new realistic tasks for a BIM/Architecture project manager. Respond ONLY with a valid JSON array of objects. Each object must have "title" (string), "projectId" (randomly pick one from ['%s']), "dueDate" (a date in the next 2 weeks in YYYY-MM-DD format, today is %s), and "source" (randomly pick one from ['Asana', 'Outlook', 'Whatsapp', 'Trimble Connect']). Do not include any other text or markdown.`

const meetingNotesPromptTemplate = `From the following meeting transcript for a meeting titled %q on %s, generate a plausible meeting summary (2-3 sentences) and 2-3 key action items. Respond ONLY with a valid JSON object with keys "transcriptSummary" (string) and "actionItems" (array of strings). Do not include any other text or markdown.

Transcript:
"""%s"""`

const articleSystemPrompt = `You are a knowledge base assistant for an architecture firm.`

const articlePromptTemplate = `Based on the following topic, generate a concise and informative article. Use Markdown format. Include headings, lists, or other relevant formatting.

Topic: %q`

const transcribePrompt = `Transcribe this meeting audio verbatim. Provide only the transcript text.`
