package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response  string
	Err       error
	LastQuery string
	Calls     int
}

func (m *MockClient) Generate(_ context.Context, query string) (string, error) {
	m.LastQuery = query
	m.Calls++
	return m.Response, m.Err
}
