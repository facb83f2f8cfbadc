package ideas

import "github.com/sashabaranov/go-openai/jsonschema"

const systemInstruction = `You are an expert cake designer AI assistant for a luxury cake brand named "کیک‌آرت" (Cake Art). Your goal is to help users brainstorm beautiful and unique cake ideas based on their preferences (occasion, style, color).
Provide 2-3 distinct, creative, and appealing cake concepts.
Your tone should be inspiring, elegant, and professional, while still being creative.
All output MUST be in Persian.
For each concept, provide:
1.  A creative and appealing name ('name').
2.  A detailed visual description ('description') of the cake's design, textures, and decorative elements.
3.  An array of three interesting and complementary flavor combinations ('flavors').`

// responseSchema is the structure the provider must return.
var responseSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"ideas": {
			Type:        jsonschema.Array,
			Description: "An array of 2-3 creative and appealing cake ideas.",
			Items: &jsonschema.Definition{
				Type:     jsonschema.Object,
				Required: []string{"name", "description", "flavors"},
				Properties: map[string]jsonschema.Definition{
					"name": {
						Type:        jsonschema.String,
						Description: "A creative and appealing name for the cake concept in Persian.",
					},
					"description": {
						Type:        jsonschema.String,
						Description: "A detailed and imaginative visual description of the cake's design, textures, and decorative elements in Persian.",
					},
					"flavors": {
						Type:        jsonschema.Array,
						Description: "An array of 3 creative and complementary flavor combinations in Persian (e.g., 'موس شکلات سفید با ژله توت‌فرنگی و کرم وانیل').",
						Items:       &jsonschema.Definition{Type: jsonschema.String},
					},
				},
			},
		},
	},
	Required: []string{"ideas"},
}
