package service

import (
	"errors"
	"testing"

	"testcreator_backend/internal/util"
)

func answer(value int, checked bool) TestAttemptAnswerViewModel {
	return TestAttemptAnswerViewModel{Value: value, Checked: checked}
}

func TestIsMultipleChoice(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{name: "single positive answer", values: []int{3, 0, -1}, want: false},
		{name: "two positive answers", values: []int{2, 2, 0}, want: true},
		{name: "no positive answers", values: []int{0, -1, -2}, want: false},
		{name: "negatives do not count", values: []int{5, -1, -1, -1}, want: false},
		{name: "empty answer list", values: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := TestAttemptEntryViewModel{}
			for _, v := range tc.values {
				entry.Answers = append(entry.Answers, answer(v, false))
			}
			if got := entry.IsMultipleChoice(); got != tc.want {
				t.Errorf("IsMultipleChoice() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCalculateResult(t *testing.T) {
	svc := NewScoringService()

	tests := []struct {
		name     string
		entries  []TestAttemptEntryViewModel
		score    int
		maxScore int
	}{
		{
			name: "all correct across single and multi choice",
			entries: []TestAttemptEntryViewModel{
				// 单选：满分 3，勾选正确项
				{Answers: []TestAttemptAnswerViewModel{answer(3, true), answer(0, false)}},
				// 多选：两个正分项都勾选
				{Answers: []TestAttemptAnswerViewModel{answer(1, true), answer(2, true), answer(0, false)}},
			},
			score:    6,
			maxScore: 6,
		},
		{
			name: "multi choice forfeited by one wrong check",
			entries: []TestAttemptEntryViewModel{
				// 单选答对
				{Answers: []TestAttemptAnswerViewModel{answer(2, true), answer(0, false)}},
				// 多选勾了零分项，整题清零
				{Answers: []TestAttemptAnswerViewModel{answer(1, true), answer(2, true), answer(0, true)}},
			},
			score:    2,
			maxScore: 5,
		},
		{
			name: "negative distractor lowers score but not ceiling",
			entries: []TestAttemptEntryViewModel{
				// 单选勾选负分项，得分可为负，满分不含负项
				{Answers: []TestAttemptAnswerViewModel{answer(2, false), answer(-2, true)}},
			},
			score:    -2,
			maxScore: 2,
		},
		{
			name: "multi choice nothing checked scores zero",
			entries: []TestAttemptEntryViewModel{
				{Answers: []TestAttemptAnswerViewModel{answer(1, false), answer(1, false)}},
			},
			score:    0,
			maxScore: 2,
		},
		{
			name: "ceiling independent of checked state",
			entries: []TestAttemptEntryViewModel{
				{Answers: []TestAttemptAnswerViewModel{answer(4, false), answer(0, false), answer(-3, false)}},
			},
			score:    0,
			maxScore: 4,
		},
		{
			name:     "empty submission",
			entries:  nil,
			score:    0,
			maxScore: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.CalculateResult(&TestAttemptViewModel{
				TestID:  7,
				Title:   "Sample",
				Entries: tc.entries,
			})
			if err != nil {
				t.Fatalf("CalculateResult() error = %v", err)
			}
			if result.Score != tc.score {
				t.Errorf("Score = %d, want %d", result.Score, tc.score)
			}
			if result.MaximalPossibleScore != tc.maxScore {
				t.Errorf("MaximalPossibleScore = %d, want %d", result.MaximalPossibleScore, tc.maxScore)
			}
			if result.TestID != 7 || result.Title != "Sample" {
				t.Errorf("result identity = (%d, %q), want (7, \"Sample\")", result.TestID, result.Title)
			}
		})
	}
}

func TestCalculateResultNilSubmission(t *testing.T) {
	svc := NewScoringService()

	result, err := svc.CalculateResult(nil)
	if !errors.Is(err, util.ErrInvalidArgument) {
		t.Fatalf("CalculateResult(nil) error = %v, want ErrInvalidArgument", err)
	}
	if result != nil {
		t.Errorf("CalculateResult(nil) result = %+v, want nil", result)
	}
}
