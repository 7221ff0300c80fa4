package generation

import (
	"fmt"
	"strings"
)

// languageNames maps the client's language codes to the names the model is
// instructed with. Unknown codes fall back to English.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"hi": "Hindi",
}

type (
	// IngredientsPrompt is the ingredients-mode generation request, already
	// validated and clamped by the caller.
	IngredientsPrompt struct {
		Ingredients    []string
		CookingStyle   string
		Theme          string
		DifficultyMode bool
		Language       string
		ServingSize    int
	}

	// NamePrompt is the name-mode generation request.
	NamePrompt struct {
		RecipeName  string
		Language    string
		ServingSize int
	}
)

const outputShapeDirective = `Format as JSON: { "recipe": "name", "ingredients": ["item1", "item2", ...], "steps": [{"instruction": "...", "time": "X minutes" | null}] }. ` +
	`Ensure ingredients are a simple string array, not objects. Ensure valid JSON with proper brackets.`

// FilterIngredients drops entries that are empty or whitespace-only and trims
// the rest. Compose never sees blank ingredients.
func FilterIngredients(ingredients []string) []string {
	filtered := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		trimmed := strings.TrimSpace(ing)
		if trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return filtered
}

func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

// ComposeFromIngredients builds the model instruction for ingredients mode.
// Pure function: same input, same prompt.
func ComposeFromIngredients(p IngredientsPrompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a recipe using %s for %d servings. ",
		strings.Join(p.Ingredients, ", "), p.ServingSize)

	if p.DifficultyMode {
		b.WriteString("Make it challenging for experienced chefs. ")
	} else {
		b.WriteString("Keep it simple. ")
	}

	if p.CookingStyle != "" {
		fmt.Fprintf(&b, "Use %s cooking style. ", p.CookingStyle)
	}
	if p.Theme != "" {
		fmt.Fprintf(&b, "Give the recipe a %s theme. ", p.Theme)
	}

	writeLanguageDirective(&b, p.Language)
	b.WriteString(outputShapeDirective)
	return b.String()
}

// ComposeFromName builds the model instruction for name mode.
func ComposeFromName(p NamePrompt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a recipe for %q for %d servings. ",
		p.RecipeName, p.ServingSize)
	b.WriteString("Provide a list of ingredients and detailed steps with optional times. ")

	writeLanguageDirective(&b, p.Language)
	b.WriteString(outputShapeDirective)
	return b.String()
}

func writeLanguageDirective(b *strings.Builder, language string) {
	fmt.Fprintf(b, "Provide the recipe entirely in %s, including ingredient names, instructions, and any descriptive text. "+
		"Do not use English unless explicitly requested. ", LanguageName(language))
}
