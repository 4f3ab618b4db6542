package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/akolanti/GoFaqRag/internal/domain/docModel"
)

// WriteReport prints a run in the per-question-then-summary layout the
// evaluation CLI emits.
func WriteReport(w io.Writer, report docModel.EvaluationReport) error {
	for i, q := range report.PerQuestion {
		if _, err := fmt.Fprintf(w, "Q%d: %s\n", i+1, q.Question); err != nil {
			return err
		}
		if q.Correct {
			fmt.Fprintf(w, "correct document retrieved (position %d)\n", q.Position)
		} else {
			fmt.Fprintf(w, "correct document NOT retrieved\n")
			fmt.Fprintf(w, "  Expected: %s\n", q.ExpectedSource)
			fmt.Fprintf(w, "  Retrieved: %v\n", q.RetrievedSources)
		}
		fmt.Fprintf(w, "  Retrieval time: %.2fs\n", q.RetrievalTime.Seconds())
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}

	fmt.Fprintf(w, "\n====== EVALUATION RESULTS ======\n")
	fmt.Fprintf(w, "Total questions: %d\n", report.TotalQuestions)
	fmt.Fprintf(w, "Recall@%d: %.2f (%d/%d)\n", report.K, report.RecallAtK, report.CorrectRetrievals, report.TotalQuestions)
	if report.AnswerInContextRate != nil {
		fmt.Fprintf(w, "Answer-in-context rate: %.2f\n", *report.AnswerInContextRate)
	}
	_, err := fmt.Fprintf(w, "Average retrieval time: %.4fs\n", report.AvgRetrievalTime.Seconds())
	return err
}
