package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/sessionrecord"
	"github.com/prepdeck/prepdeck/internal/feedback"
	"github.com/prepdeck/prepdeck/internal/interview"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Log(ctx context.Context, sess *interview.Session, answered, skipped int, report *feedback.Report) error {
	builder := r.client.SessionRecord.Create().
		SetSessionID(sess.ID).
		SetRole(sess.Metadata.Role).
		SetCompany(sess.Metadata.Company).
		SetInterviewType(string(sess.Metadata.Type)).
		SetDifficulty(string(sess.Metadata.Difficulty)).
		SetTotalQuestions(len(sess.Questions)).
		SetAnswered(answered).
		SetSkipped(skipped).
		SetCompletionRate(sess.CompletionRate).
		SetStartedAt(sess.StartedAt).
		SetCompletedAt(sess.CompletedAt)

	if report != nil {
		builder = builder.
			SetOverallScore(report.OverallScore).
			SetGrade(report.OverallGrade)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("log completed session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]CompletedSession, error) {
	q := r.client.SessionRecord.Query().
		Order(ent.Desc(sessionrecord.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]CompletedSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, CompletedSession{
			SessionID:      row.SessionID,
			Role:           row.Role,
			Company:        row.Company,
			InterviewType:  row.InterviewType,
			Difficulty:     row.Difficulty,
			TotalQuestions: row.TotalQuestions,
			Answered:       row.Answered,
			Skipped:        row.Skipped,
			CompletionRate: row.CompletionRate,
			OverallScore:   row.OverallScore,
			Grade:          row.Grade,
			StartedAt:      row.StartedAt,
			CompletedAt:    row.CompletedAt,
		})
	}
	return out, nil
}

func (r *sessionRepo) Stats(ctx context.Context) (*SessionStats, error) {
	rows, err := r.client.SessionRecord.Query().
		Order(ent.Desc(sessionrecord.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session stats: %w", err)
	}

	stats := &SessionStats{Completed: len(rows)}
	if len(rows) == 0 {
		return stats, nil
	}

	stats.LastComplete = rows[0].CompletedAt
	var scoreSum, rateSum float64
	scored := 0
	bestScore := -1.0
	for _, row := range rows {
		rateSum += row.CompletionRate
		if row.Grade != "" {
			scoreSum += row.OverallScore
			scored++
			if row.OverallScore > bestScore {
				bestScore = row.OverallScore
				stats.BestGrade = row.Grade
			}
		}
	}
	stats.AvgRate = rateSum / float64(len(rows))
	if scored > 0 {
		stats.AvgScore = scoreSum / float64(scored)
	}
	return stats, nil
}
