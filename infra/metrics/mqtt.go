package metrics

import (
	"encoding/json"
	"strings"

	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
	"github.com/kilianp07/ecoroute/infra/mqtt"
)

// MQTTConfig configures the MQTT sink. Events are published as JSON under
// <topic_prefix>/prediction and <topic_prefix>/comparison.
type MQTTConfig struct {
	mqtt.Config `json:",squash"`
	TopicPrefix string `json:"topic_prefix"`
}

// MQTTSink publishes events to an MQTT broker.
type MQTTSink struct {
	pub    mqtt.Publisher
	prefix string
}

// NewMQTTSink wraps an existing publisher.
func NewMQTTSink(pub mqtt.Publisher, topicPrefix string) *MQTTSink {
	if topicPrefix == "" {
		topicPrefix = "ecoroute"
	}
	return &MQTTSink{pub: pub, prefix: strings.TrimSuffix(topicPrefix, "/")}
}

// RecordPrediction publishes the event to <prefix>/prediction.
func (s *MQTTSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	return s.publish("prediction", ev)
}

// RecordComparison publishes the event to <prefix>/comparison.
func (s *MQTTSink) RecordComparison(ev coremetrics.ComparisonEvent) error {
	return s.publish("comparison", ev)
}

// Close disconnects the underlying client when it supports it.
func (s *MQTTSink) Close() {
	if d, ok := s.pub.(interface{ Disconnect() }); ok {
		d.Disconnect()
	}
}

func (s *MQTTSink) publish(kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.pub.Publish(s.prefix+"/"+kind, payload)
}
