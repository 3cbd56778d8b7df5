package domain

type LearningTip struct {
	Title  string
	Detail string
}

var learningTips = []LearningTip{
	{Title: "Set Clear Goals", Detail: "Define what you want to achieve each week"},
	{Title: "Use Pomodoro Technique", Detail: "Study 25 mins, then take a 5-min break"},
	{Title: "Active Recall", Detail: "Test yourself instead of just re-reading"},
	{Title: "Spaced Repetition", Detail: "Review material at increasing intervals"},
	{Title: "Gamify Learning", Detail: "Create challenges and reward yourself"},
	{Title: "Get Quality Sleep", Detail: "7-9 hours helps consolidate learning"},
	{Title: "Exercise Daily", Detail: "Physical activity boosts cognitive function"},
	{Title: "Study with Others", Detail: "Collaborative learning improves retention"},
}

// LearningTips returns the fixed study tips in display order.
func LearningTips() []LearningTip {
	out := make([]LearningTip, len(learningTips))
	copy(out, learningTips)
	return out
}
