package openai

import "testing"

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		model   string
		wantErr bool
	}{
		{name: "ok", apiKey: "sk-test", model: "gpt-4o", wantErr: false},
		{name: "missing key", apiKey: "", model: "gpt-4o", wantErr: true},
		{name: "missing model", apiKey: "sk-test", model: "", wantErr: true},
		{name: "blank model", apiKey: "sk-test", model: "   ", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.apiKey, tt.model)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewClient(%q, %q) error = %v, wantErr %v", tt.apiKey, tt.model, err, tt.wantErr)
			}
		})
	}
}

func TestNewClientHonorsTimeoutEnv(t *testing.T) {
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "30")
	client, err := NewClient("sk-test", "gpt-4o")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if got := client.httpClient.Timeout.Seconds(); got != 30 {
		t.Fatalf("expected 30s timeout, got %vs", got)
	}
}
