package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conceptual-Machines/sonicdna-api/internal/llm"
	"github.com/Conceptual-Machines/sonicdna-api/internal/models"
	"github.com/Conceptual-Machines/sonicdna-api/internal/sonic"
)

type fakePutter struct {
	mu     sync.Mutex
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakePutter) PutMetricData(
	_ context.Context, params *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options),
) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, params)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func (f *fakePutter) metricNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.inputs))
	for _, in := range f.inputs {
		names = append(names, *in.MetricData[0].MetricName)
	}
	return names
}

func TestAnalysisRecorder_Success(t *testing.T) {
	recorder := NewAnalysisRecorder(NewSentryMetrics(), nil)

	before := testutil.ToFloat64(AnalysisRequests.WithLabelValues("STRICT", "success"))
	inputBefore := testutil.ToFloat64(LLMTokens.WithLabelValues("test", "test-model", "input"))

	recorder.ObserveAnalysis(context.Background(), sonic.AnalysisEvent{
		Mode:            models.ModeStrict,
		Provider:        "test",
		Model:           "test-model",
		Usage:           llm.Usage{InputTokens: 120, OutputTokens: 80, TotalTokens: 200},
		Duration:        1500 * time.Millisecond,
		Recommendations: 10,
	})

	assert.InDelta(t, before+1, testutil.ToFloat64(AnalysisRequests.WithLabelValues("STRICT", "success")), 0.001)
	assert.InDelta(t, inputBefore+120, testutil.ToFloat64(LLMTokens.WithLabelValues("test", "test-model", "input")), 0.001)
}

func TestAnalysisRecorder_Failure(t *testing.T) {
	recorder := NewAnalysisRecorder(nil, nil)

	before := testutil.ToFloat64(AnalysisRequests.WithLabelValues("DISCOVERY", "failure"))

	recorder.ObserveAnalysis(context.Background(), sonic.AnalysisEvent{
		Mode:     models.ModeDiscovery,
		Provider: "test",
		Model:    "test-model",
		Err:      errors.New("boom"),
	})

	assert.InDelta(t, before+1, testutil.ToFloat64(AnalysisRequests.WithLabelValues("DISCOVERY", "failure")), 0.001)
}

func TestCloudWatch_DisabledOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development")
	require.NoError(t, err)
	assert.False(t, client.Enabled())

	// Must not panic or send anything
	client.RecordAnalysis("STRICT", "m", time.Second, 10, true)
}

func TestCloudWatch_NilClient(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	client.RecordAnalysis("STRICT", "m", time.Second, 10, true)
}

func TestCloudWatch_PutAnalysis(t *testing.T) {
	putter := &fakePutter{}
	client := &Client{client: putter, enabled: true, environment: "production"}

	client.putAnalysis("STRICT", "gemini-3-flash-preview", 2*time.Second, 300, true)

	assert.Equal(t, []string{"Analyses", "AnalysisLatency", "LLMTokens/Total"}, putter.metricNames())
	require.Len(t, putter.inputs, 3)
	assert.Equal(t, namespace, *putter.inputs[0].Namespace)
	assert.InDelta(t, 2000.0, *putter.inputs[1].MetricData[0].Value, 0.001)
}

func TestCloudWatch_PutAnalysisFailureWithoutTokens(t *testing.T) {
	putter := &fakePutter{}
	client := &Client{client: putter, enabled: true, environment: "production"}

	client.putAnalysis("DISCOVERY", "gpt-4.1-mini", time.Second, 0, false)

	assert.Equal(t, []string{"AnalysisErrors", "AnalysisLatency"}, putter.metricNames())
}
