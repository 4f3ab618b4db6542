package eval

import (
	"context"
	"strings"
	"time"

	"github.com/akolanti/GoFaqRag/internal/config"
	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
	"github.com/akolanti/GoFaqRag/internal/rag/retrieval"
	"github.com/akolanti/GoFaqRag/pkg/logger_i"
)

// Harness runs a labelled question set against a retriever and scores
// Recall@k. Questions run sequentially so timings are not skewed by
// contention on the embedding backend.
type Harness struct {
	retriever retrieval.Retriever
	logger    *logger_i.Logger
}

func NewHarness(r retrieval.Retriever) *Harness {
	return &Harness{
		retriever: r,
		logger:    logger_i.NewLogger("Evaluation"),
	}
}

// Run evaluates every test case at the given k. A non-positive k falls
// back to the default. Retrieval errors fail the run, a wrong answer is
// a scored miss, a broken backend is not.
func (h *Harness) Run(ctx context.Context, cases []docModel.TestCase, k int) (docModel.EvaluationReport, error) {
	if k <= 0 {
		k = config.DefaultTopK
	}

	report := docModel.EvaluationReport{
		TotalQuestions: len(cases),
		K:              k,
	}
	if len(cases) == 0 {
		return report, nil
	}

	var totalTime time.Duration
	answersExpected := 0
	answersFound := 0

	for _, tc := range cases {
		start := time.Now()
		results, err := h.retriever.Retrieve(ctx, tc.Question, k)
		elapsed := time.Since(start)
		if err != nil {
			h.logger.Error("retrieval failed during evaluation", "question", tc.Question, "error", err)
			return docModel.EvaluationReport{}, err
		}
		totalTime += elapsed

		outcome := docModel.QuestionOutcome{
			Question:       tc.Question,
			ExpectedSource: tc.SourceDocument,
			RetrievalTime:  elapsed,
		}

		for i, res := range results {
			outcome.RetrievedSources = append(outcome.RetrievedSources, res.Meta.SourceID)
			if !outcome.Correct && res.Meta.SourceID == tc.SourceDocument {
				outcome.Correct = true
				outcome.Position = i + 1
			}
		}
		if outcome.Correct {
			report.CorrectRetrievals++
		}

		if tc.ExpectedAnswer != "" {
			answersExpected++
			want := strings.ToLower(tc.ExpectedAnswer)
			for _, res := range results {
				if strings.Contains(strings.ToLower(res.Content), want) {
					outcome.AnswerInContext = true
					answersFound++
					break
				}
			}
		}

		report.PerQuestion = append(report.PerQuestion, outcome)
	}

	report.RecallAtK = float64(report.CorrectRetrievals) / float64(report.TotalQuestions)
	report.AvgRetrievalTime = totalTime / time.Duration(report.TotalQuestions)
	// The rate is over every case, not just the labelled ones. A wholly
	// unlabelled set has nothing to measure and omits the metric.
	if answersExpected > 0 {
		rate := float64(answersFound) / float64(report.TotalQuestions)
		report.AnswerInContextRate = &rate
	}

	return report, nil
}
