package service

import (
	"testcreator_backend/internal/model"
	"testcreator_backend/internal/util"
)

// TestAttemptAnswerViewModel 单个备选答案及作答者是否勾选。
// Value 为有符号整数，勾选负分干扰项会扣分。
type TestAttemptAnswerViewModel struct {
	ID      uint   `json:"Id"`
	Text    string `json:"Text"`
	Value   int    `json:"Value"`
	Checked bool   `json:"Checked"`
}

// TestAttemptEntryViewModel 一道题的作答记录：题目加全部备选答案。
type TestAttemptEntryViewModel struct {
	Question model.Question               `json:"Question"`
	Answers  []TestAttemptAnswerViewModel `json:"Answers"`
}

// IsMultipleChoice 派生属性：正分答案多于一个即视为多选题。
// 始终按答案列表计算，不落库，避免与作者编辑后的数据不一致。
func (e *TestAttemptEntryViewModel) IsMultipleChoice() bool {
	positive := 0
	for _, a := range e.Answers {
		if a.Value > 0 {
			positive++
		}
	}
	return positive > 1
}

type TestAttemptViewModel struct {
	TestID  uint   `json:"TestId"`
	Title   string `json:"Title"`
	UserID  string `json:"UserId"`
	Entries []TestAttemptEntryViewModel `json:"TestAttemptEntries"`
}

type TestAttemptResultViewModel struct {
	TestID               uint   `json:"TestId"`
	Title                string `json:"Title"`
	Score                int    `json:"Score"`
	MaximalPossibleScore int    `json:"MaximalPossibleScore"`
}

// ScoringService 对提交的答题记录评分。纯计算，无副作用，可并发调用。
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// CalculateResult 计算得分与满分。
//
// 满分：所有 Value >= 0 的答案之和，与勾选无关（负分干扰项不计入上限）。
//
// 得分按题目类型分别累计：
//   - 单选题：所有勾选答案的 Value 之和，不论正负。界面用单选控件保证
//     互斥，这里不做强制，多勾即多计。
//   - 多选题：仅当每个勾选答案的 Value 都严格为正时计入勾选之和，
//     否则整题记 0（全对或全无）。
func (s *ScoringService) CalculateResult(submission *TestAttemptViewModel) (*TestAttemptResultViewModel, error) {
	if submission == nil {
		return nil, util.ErrInvalidArgument
	}

	maxScore := 0
	score := 0

	for i := range submission.Entries {
		entry := &submission.Entries[i]

		for _, a := range entry.Answers {
			if a.Value >= 0 {
				maxScore += a.Value
			}
		}

		if entry.IsMultipleChoice() {
			if allCheckedAnswersCorrect(entry.Answers) {
				score += checkedSum(entry.Answers)
			}
		} else {
			score += checkedSum(entry.Answers)
		}
	}

	return &TestAttemptResultViewModel{
		TestID:               submission.TestID,
		Title:                submission.Title,
		Score:                score,
		MaximalPossibleScore: maxScore,
	}, nil
}

func checkedSum(answers []TestAttemptAnswerViewModel) int {
	sum := 0
	for _, a := range answers {
		if a.Checked {
			sum += a.Value
		}
	}
	return sum
}

// allCheckedAnswersCorrect 勾选的答案是否全部为正分。没有勾选任何
// 答案时也成立，此时勾选之和为 0，整题同样贡献 0 分。
func allCheckedAnswersCorrect(answers []TestAttemptAnswerViewModel) bool {
	for _, a := range answers {
		if a.Checked && a.Value <= 0 {
			return false
		}
	}
	return true
}
