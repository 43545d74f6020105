package invoice

import "strings"

// Two independent wrapping policies feed the preview:
// addresses wrap on a character budget, descriptions on a word count.
// Both are greedy and only ever break on spaces.

// addressLineWidth is the visual width of the "Bill To" block.
const addressLineWidth = 25

// descriptionWordsPerLine bounds how many words sit on one description line.
const descriptionWordsPerLine = 15

// WrapAddress reflows free text into lines of at most 25 characters,
// breaking only at spaces. A single word longer than the budget gets a
// line of its own rather than being chopped.
func WrapAddress(text string) string {
	if text == "" {
		return ""
	}

	var lines []string
	current := ""
	for _, word := range strings.Split(text, " ") {
		if current != "" && len(current)+1+len(word) > addressLineWidth {
			lines = append(lines, current)
			current = word
		} else if current == "" {
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

// WrapDescription reflows item text after every 15th word. This is a
// word-count rule, not a character rule — long technical descriptions
// stay readable in the items table no matter how long the words are.
func WrapDescription(text string) string {
	if text == "" {
		return ""
	}

	var lines []string
	var current []string
	for _, word := range strings.Split(text, " ") {
		if len(current) >= descriptionWordsPerLine {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
		} else {
			current = append(current, word)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return strings.Join(lines, "\n")
}
