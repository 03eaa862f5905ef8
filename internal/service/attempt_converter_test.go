package service

import (
	"testing"

	"testcreator_backend/internal/model"
)

func TestBuildTestAttempt(t *testing.T) {
	test := &model.Test{
		BaseModel: model.BaseModel{ID: 5},
		Title:     "Geography",
		Questions: []model.Question{
			{
				BaseModel: model.BaseModel{ID: 11},
				Text:      "Capital of France?",
				Answers: []model.Answer{
					{BaseModel: model.BaseModel{ID: 21}, Text: "Paris", Value: 2},
					{BaseModel: model.BaseModel{ID: 22}, Text: "Lyon", Value: 0},
					{BaseModel: model.BaseModel{ID: 23}, Text: "Atlantis", Value: -1},
				},
			},
			{
				BaseModel: model.BaseModel{ID: 12},
				Text:      "No answers yet",
			},
		},
	}

	vm := BuildTestAttempt(test)
	if vm == nil {
		t.Fatal("BuildTestAttempt() = nil")
	}
	if vm.TestID != 5 || vm.Title != "Geography" {
		t.Errorf("attempt identity = (%d, %q), want (5, \"Geography\")", vm.TestID, vm.Title)
	}
	if len(vm.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(vm.Entries))
	}

	entry := vm.Entries[0]
	if entry.Question.ID != 11 {
		t.Errorf("entry question ID = %d, want 11", entry.Question.ID)
	}
	if len(entry.Answers) != 3 {
		t.Fatalf("len(Answers) = %d, want 3", len(entry.Answers))
	}
	for _, a := range entry.Answers {
		if a.Checked {
			t.Errorf("answer %d starts checked", a.ID)
		}
	}
	if entry.Answers[2].Value != -1 {
		t.Errorf("negative distractor value = %d, want -1", entry.Answers[2].Value)
	}

	if got := len(vm.Entries[1].Answers); got != 0 {
		t.Errorf("answerless question has %d answers", got)
	}
}

func TestBuildTestAttemptNil(t *testing.T) {
	if vm := BuildTestAttempt(nil); vm != nil {
		t.Errorf("BuildTestAttempt(nil) = %+v, want nil", vm)
	}
}
