package generator

import "fmt"

// FallbackQuestions returns the built-in question set, templated on the
// chosen topic so the quiz stays playable when the generation API is
// unreachable or returns garbage.
func FallbackQuestions(topic string) []Question {
	return []Question{
		{
			ID:            1,
			Prompt:        fmt.Sprintf("What is the time complexity of binary search in %s?", topic),
			Options:       []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
			CorrectOption: 1,
		},
		{
			ID:            2,
			Prompt:        fmt.Sprintf("Which of these is not a %s data type?", topic),
			Options:       []string{"String", "Boolean", "Integer", "Object"},
			CorrectOption: 2,
		},
		{
			ID:            3,
			Prompt:        fmt.Sprintf("What does %s stand for?", topic),
			Options:       []string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"},
			CorrectOption: 0,
		},
		{
			ID:            4,
			Prompt:        fmt.Sprintf("What is the main advantage of %s?", topic),
			Options:       []string{"Speed", "Simplicity", "Security", "Scalability"},
			CorrectOption: 1,
		},
		{
			ID:            5,
			Prompt:        fmt.Sprintf("Which company developed %s?", topic),
			Options:       []string{"Microsoft", "Google", "Apple", "IBM"},
			CorrectOption: 1,
		},
		{
			ID:            6,
			Prompt:        fmt.Sprintf("When was %s first released?", topic),
			Options:       []string{"1990", "1995", "2000", "2005"},
			CorrectOption: 1,
		},
		{
			ID:            7,
			Prompt:        fmt.Sprintf("Which data structure does %s use for function calls?", topic),
			Options:       []string{"Queue", "Stack", "Heap", "Tree"},
			CorrectOption: 1,
		},
		{
			ID:            8,
			Prompt:        fmt.Sprintf("Which of these is a common use case for %s?", topic),
			Options:       []string{"Device drivers", "Web development", "Firmware", "Kernels"},
			CorrectOption: 1,
		},
		{
			ID:            9,
			Prompt:        fmt.Sprintf("What file extension is commonly associated with %s?", topic),
			Options:       []string{".doc", ".exe", ".src", ".txt"},
			CorrectOption: 2,
		},
		{
			ID:            10,
			Prompt:        fmt.Sprintf("Which paradigm does %s primarily follow?", topic),
			Options:       []string{"Functional", "Object-oriented", "Logic", "Assembly"},
			CorrectOption: 1,
		},
	}
}

// Built-in word sets, one per difficulty band
var fallbackWords = map[Difficulty][]string{
	DifficultyEasy:   {"BOOK", "TREE", "FISH", "LAMP", "STAR"},
	DifficultyMedium: {"APPLE", "HOUSE", "WATER", "BREAD", "CHAIR"},
	DifficultyHard:   {"PROGRAM", "NETWORK", "SCIENCE", "LIBRARY", "JOURNEY"},
}

// FallbackWords returns the built-in word set for the difficulty
func FallbackWords(difficulty Difficulty) []string {
	words, ok := fallbackWords[difficulty]
	if !ok {
		words = fallbackWords[DifficultyEasy]
	}
	// Copy so callers cannot mutate the canonical set
	out := make([]string, len(words))
	copy(out, words)
	return out
}
