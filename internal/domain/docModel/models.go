package docModel

import "time"

// RawDocument is what the text extraction layer hands the pipeline:
// one source document, fully extracted, immutable after creation.
type RawDocument struct {
	SourceID string `json:"source_id"`
	Text     string `json:"text"`
}

// DocumentMetadata is derived once per RawDocument and attached to every
// chunk produced from it. Date and Description degrade to "" - never nil.
type DocumentMetadata struct {
	SourceID    string `json:"source_id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Chunk is the unit stored in and retrieved from the vector index.
// A chunk either carries Question/QuestionNumber (question-anchored) or
// neither (fallback windowed chunk) - never a mix within one document.
type Chunk struct {
	ChunkID        string           `json:"chunk_id"`
	Content        string           `json:"content"`
	Meta           DocumentMetadata `json:"metadata"`
	Question       string           `json:"question,omitempty"`
	QuestionNumber int              `json:"question_number,omitempty"`
	HasQuestion    bool             `json:"has_question"`
	WindowIndex    int              `json:"window_index"`
	IngestedAt     time.Time        `json:"ingested_at"`
}

// RetrievalResult is one shaped hit from the vector index.
// RelevanceScore is whatever the index reports; degenerate corpora can
// push it outside [0,1] and the contract does not clamp it.
type RetrievalResult struct {
	Content        string           `json:"content"`
	Meta           DocumentMetadata `json:"metadata"`
	Question       string           `json:"question,omitempty"`
	RelevanceScore float32          `json:"relevance_score"`
}

// TestCase is one fixed evaluation question.
type TestCase struct {
	Question       string `json:"question"`
	SourceDocument string `json:"source_document"`
	ExpectedAnswer string `json:"expected_answer,omitempty"`
}

// QuestionOutcome records the per-question diagnostics of one evaluation run.
type QuestionOutcome struct {
	Question         string        `json:"question"`
	ExpectedSource   string        `json:"expected_source"`
	RetrievedSources []string      `json:"retrieved_sources"`
	Correct          bool          `json:"correct"`
	Position         int           `json:"position"` //1-based rank of the hit, 0 on a miss
	AnswerInContext  bool          `json:"answer_in_context"`
	RetrievalTime    time.Duration `json:"retrieval_time"`
}

// EvaluationReport aggregates one full run. AnswerInContextRate is nil when
// no test case supplies an expected answer.
type EvaluationReport struct {
	RecallAtK           float64           `json:"recall_at_k"`
	AnswerInContextRate *float64          `json:"answer_in_context_rate,omitempty"`
	AvgRetrievalTime    time.Duration     `json:"avg_retrieval_time"`
	TotalQuestions      int               `json:"total_questions"`
	CorrectRetrievals   int               `json:"correct_retrievals"`
	K                   int               `json:"k"`
	PerQuestion         []QuestionOutcome `json:"per_question"`
}
