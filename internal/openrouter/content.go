package openrouter

import "encoding/json"

// completion covers the response shapes seen from OpenRouter models.
type completion struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Content  *string `json:"content"`
	Text     *string `json:"text"`
	Response *string `json:"response"`
}

// ExtractContent returns the generated text of a completion body. It looks at
// choices[0].message.content first, then the top-level content, text and
// response fields. ok is false when the body is not JSON.
func ExtractContent(body []byte) (content string, ok bool) {
	var c completion
	if err := json.Unmarshal(body, &c); err != nil {
		return "", false
	}
	if len(c.Choices) > 0 {
		if p := c.Choices[0].Message.Content; p != nil {
			return *p, true
		}
		return "", true
	}
	for _, p := range []*string{c.Content, c.Text, c.Response} {
		if p != nil && *p != "" {
			return *p, true
		}
	}
	return "", true
}
