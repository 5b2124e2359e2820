// pkg/career/predictor/predictor.go

package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"elevare/entities"
)

// Client predicts a career label from a profile. Predictions are transient;
// nothing here touches the store.
type Client interface {
	Predict(ctx context.Context, p entities.CareerProfile) (string, error)
}

type mlClient struct{ endpoint string }

// NewML talks to the external ML service's /predict endpoint.
func NewML(endpoint string) Client {
	return &mlClient{endpoint: strings.TrimRight(endpoint, "/")}
}

func (c *mlClient) Predict(ctx context.Context, p entities.CareerProfile) (string, error) {
	b, _ := json.Marshal(p)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	httpc := &http.Client{Timeout: 20 * time.Second}
	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ml api returned status %d", resp.StatusCode)
	}
	var out entities.CareerPrediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Career) == "" {
		return "", fmt.Errorf("ml api returned no prediction")
	}
	return out.Career, nil
}

type mockClient struct{}

// NewMock is a keyword heuristic used when no ML endpoint is configured.
func NewMock() Client { return &mockClient{} }

var keywordCareers = []struct {
	keyword string
	career  string
}{
	{"machine learning", "Machine Learning Engineer"},
	{"data", "Data Scientist"},
	{"security", "Security Engineer"},
	{"cloud", "Cloud Engineer"},
	{"design", "UX Designer"},
	{"mobile", "Mobile Developer"},
	{"web", "Full Stack Developer"},
}

func (m *mockClient) Predict(_ context.Context, p entities.CareerProfile) (string, error) {
	joined := strings.ToLower(strings.Join(append(append([]string{p.Course, p.Specialization}, p.Skills...), p.Interests...), " "))
	for _, kc := range keywordCareers {
		if strings.Contains(joined, kc.keyword) {
			return kc.career, nil
		}
	}
	return "Software Engineer", nil
}
