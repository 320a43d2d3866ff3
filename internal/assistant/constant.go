package assistant

// SystemInstruction is the persona sent with every assistant request.
const SystemInstruction = `You are an intelligent inventory assistant for NexStock.
You can analyze stock data, predict trends, and help users navigate the app.
When a user asks a question, assume you have access to the product list provided in the prompt.
If the user asks to filter or find items, return a structured JSON response identifying the filter criteria.
If the user asks for a forecast, simulate a realistic prediction based on the context.
Keep responses concise and professional.`

// Greeting opens every session transcript.
const Greeting = "Hello! I am your inventory assistant. Ask me about stock levels, low items, or to find specific products."

// Fixed replies used when the model cannot answer.
const (
	AnswerUnavailable = "Sorry, I encountered an error analyzing the inventory."
	AnswerEmpty       = "I couldn't process that request."

	ForecastMissingKey  = "Forecast unavailable (API Key missing)."
	ForecastEmpty       = "Forecast unavailable."
	ForecastUnavailable = "Unable to generate forecast at this time."
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
