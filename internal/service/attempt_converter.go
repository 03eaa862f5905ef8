package service

import (
	"testcreator_backend/internal/model"
)

// BuildTestAttempt 将预加载了题目与答案的试卷转换为答题视图，
// 供作答界面展示。所有答案初始未勾选。test 为 nil 时返回 nil。
func BuildTestAttempt(test *model.Test) *TestAttemptViewModel {
	if test == nil {
		return nil
	}

	vm := &TestAttemptViewModel{
		TestID:  test.ID,
		Title:   test.Title,
		Entries: make([]TestAttemptEntryViewModel, 0, len(test.Questions)),
	}

	for _, question := range test.Questions {
		entry := TestAttemptEntryViewModel{
			Question: question,
			Answers:  make([]TestAttemptAnswerViewModel, 0, len(question.Answers)),
		}
		for _, answer := range question.Answers {
			entry.Answers = append(entry.Answers, TestAttemptAnswerViewModel{
				ID:    answer.ID,
				Text:  answer.Text,
				Value: answer.Value,
			})
		}
		vm.Entries = append(vm.Entries, entry)
	}

	return vm
}
