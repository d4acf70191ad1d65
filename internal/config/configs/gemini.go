package configs

// Gemini configures the text generation collaborator used by campaign
// onboarding. Generation is disabled when the key is empty.
type Gemini struct {
	APIKey   string `env:"API_KEY"`
	Model    string `env:"MODEL" envDefault:"gemini-2.5-flash"`
	Endpoint string `env:"ENDPOINT" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
}
