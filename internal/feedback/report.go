package feedback

import "github.com/prepdeck/prepdeck/internal/interview"

// Report is the AI-generated feedback for one completed session.
type Report struct {
	OverallScore   float64 `json:"overallScore"`
	OverallGrade   string  `json:"overallGrade"`
	CompletionRate float64 `json:"completionRate"`

	Metrics Metrics `json:"metrics"`

	Strengths       []string `json:"overallStrengths"`
	Improvements    []string `json:"overallImprovements"`
	Recommendations []string `json:"recommendations"`
	NextSteps       []string `json:"nextSteps"`

	QuestionFeedbacks []QuestionFeedback `json:"questionFeedbacks"`
}

// Metrics summarizes response volume across the session.
type Metrics struct {
	QuestionsAnswered        int     `json:"questionsAnswered"`
	TotalQuestions           int     `json:"totalQuestions"`
	AvgCommunicationScore    float64 `json:"averageCommunicationScore"`
	TotalWordsSpoken         int     `json:"totalWordsSpoken"`
	AvgWordsPerResponse      float64 `json:"averageWordsPerResponse"`
	QuestionsWithTranscripts int     `json:"questionsWithTranscripts"`
}

// QuestionFeedback is the per-question breakdown.
type QuestionFeedback struct {
	QuestionID   string   `json:"questionId"`
	QuestionText string   `json:"questionText"`
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	Comment      string   `json:"comment,omitempty"`
}

// GradeFor maps a 0-100 score onto the letter-grade ladder.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	default:
		return "D"
	}
}

// Normalize fills the fields a partial backend response may omit, the way the
// original client defends against incomplete reports: a missing grade is
// derived from the score and a missing completion rate is recomputed from the
// answers.
func Normalize(r *Report, answers []interview.Answer, totalQuestions int) {
	answered := 0
	transcripts := 0
	words := 0
	for _, a := range answers {
		if a.Present() {
			answered++
		}
		if a.Transcription != nil && a.Transcription.Text != "" {
			transcripts++
			words += wordCount(a.Transcription.Text)
		}
	}

	if r.OverallGrade == "" {
		r.OverallGrade = GradeFor(r.OverallScore)
	}
	if r.CompletionRate == 0 && totalQuestions > 0 {
		r.CompletionRate = interview.Rate(answered, totalQuestions)
	}
	if r.Metrics.TotalQuestions == 0 {
		r.Metrics.TotalQuestions = totalQuestions
	}
	if r.Metrics.QuestionsAnswered == 0 {
		r.Metrics.QuestionsAnswered = answered
	}
	if r.Metrics.QuestionsWithTranscripts == 0 {
		r.Metrics.QuestionsWithTranscripts = transcripts
	}
	if r.Metrics.TotalWordsSpoken == 0 {
		r.Metrics.TotalWordsSpoken = words
	}
	if r.Metrics.AvgWordsPerResponse == 0 && transcripts > 0 {
		r.Metrics.AvgWordsPerResponse = float64(words) / float64(transcripts)
	}
}

func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}
