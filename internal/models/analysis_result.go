package models

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

func (s Sentiment) String() string {
	return string(s)
}

// AnalysisResult is the single row written for one analyzed file.
type AnalysisResult struct {
	FileName       string    `json:"file_name" dynamodbav:"file_name"`
	RawText        string    `json:"raw_text" dynamodbav:"raw_text"`
	TotalWordCount int       `json:"total_word_count" dynamodbav:"total_word_count"`
	Sentiment      Sentiment `json:"sentiment" dynamodbav:"sentiment"`
}

func NewAnalysisResult(fileName, rawText string, wordCount int, sentiment Sentiment) AnalysisResult {
	if wordCount < 0 {
		wordCount = 0
	}
	return AnalysisResult{
		FileName:       fileName,
		RawText:        rawText,
		TotalWordCount: wordCount,
		Sentiment:      sentiment,
	}
}
