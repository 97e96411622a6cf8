package ai

import "fmt"

// GetSummarizePrompt returns the system prompt for extractive-style article summarization.
func GetSummarizePrompt(title string, sentences int) string {
	titleTag := ""
	if title != "" {
		titleTag = fmt.Sprintf("\n<article_title>%s</article_title>", title)
	}
	if sentences <= 0 {
		sentences = 5
	}

	return fmt.Sprintf(`You are an expert news editor. Summarize the article in at most %d sentences.

<context>%s
</context>

<instructions>
1. Write in the same language as the article
2. Output plain text ONLY, one sentence per line
3. Prefer sentences that appear in the article, in their original order
4. NEVER use Markdown formatting or bullet symbols (no *, -, 1., 2.)
5. NEVER add introductions or conclusions
6. NO leading or trailing newlines
</instructions>`, sentences, titleTag)
}

// GetTranslateTextPrompt returns the system prompt for plain text translation.
func GetTranslateTextPrompt(textType, language string) string {
	return fmt.Sprintf(`You are an expert translator. Translate the %s into the target language.

<context>
<content_type>%s</content_type>
<target_language>%s</target_language>
</context>

<instructions>
1. You MUST translate into the language specified in <target_language>. Responses in other languages are invalid
2. Output ONLY the translated text, nothing else
3. Preserve the original meaning, tone and line breaks
4. Keep proper nouns and brand names unchanged
5. NEVER translate URLs
6. NO explanations, NO notes, NO markdown formatting
7. NO leading or trailing newlines
</instructions>`, textType, textType, language)
}
