package clients

// USER_AGENT_ENTRY is appended to the Databricks driver's user agent so
// warehouse query history shows where a query came from.
const USER_AGENT_ENTRY = "wordsentiment"
