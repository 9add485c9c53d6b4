package prompts

const (
	// BreakdownSystemPrompt defines the persona for the AI breakdown feature.
	BreakdownSystemPrompt = `You are a helpful productivity assistant. Your goal is to make vague tasks actionable.`

	// BreakdownUserPrompt is the instruction wrapped around the user's rough
	// task description. Providers that cannot enforce a response schema rely
	// on the embedded format rules instead.
	BreakdownUserPrompt = `Break down the following task into a refined title, a priority, and a short list of concrete steps.

Task: "%s"

Rules:
- "refinedTitle" rewrites the task as one clear, actionable sentence.
- "priority" is exactly one of "Low", "Medium" or "High", judged from urgency and effort.
- "subtasks" lists at most 5 concrete steps; omit it when the task needs no breakdown.

Return ONLY a single JSON object in this form, with no surrounding text or Markdown:

{
  "refinedTitle": "Book a dentist appointment for next week",
  "priority": "Medium",
  "subtasks": ["Find the clinic's phone number", "Call during opening hours"]
}`
)
