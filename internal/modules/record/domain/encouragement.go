package domain

import "fmt"

var encouragementTemplates = []string{
	"Great job today, %s! Keep pushing forward!",
	"You're doing amazing, %s! Stay focused!",
	"Proud of your effort, %s! You got this!",
	"Excellence is your path, %s! Well done!",
	"You're crushing it, %s! Never give up!",
	"%s, you're a star! Keep shining!",
}

// EncouragementCount is the number of templates Encouragement chooses from.
func EncouragementCount() int { return len(encouragementTemplates) }

// Encouragement renders template i (wrapped into range) for name.
func Encouragement(name string, i int) string {
	n := len(encouragementTemplates)
	i = ((i % n) + n) % n
	return fmt.Sprintf(encouragementTemplates[i], name)
}
