package e2e

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxClient reads back what the sinks wrote during the e2e tests.
type InfluxClient struct {
	bucket string
	client influxdb2.Client
	query  api.QueryAPI
}

// NewInfluxClient creates a client for a running InfluxDB instance.
func NewInfluxClient(url, org, bucket, token string) *InfluxClient {
	c := influxdb2.NewClient(url, token)
	return &InfluxClient{bucket: bucket, client: c, query: c.QueryAPI(org)}
}

// Fields returns the values of every field of measurement written in the
// last hour, keyed by field name.
func (c *InfluxClient) Fields(ctx context.Context, measurement string) (map[string]any, error) {
	flux := fmt.Sprintf(`from(bucket:%q) |> range(start:-1h) |> filter(fn: (r) => r._measurement == %q)`,
		c.bucket, measurement)
	res, err := c.query.Query(ctx, flux)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	out := map[string]any{}
	for res.Next() {
		rec := res.Record()
		out[rec.Field()] = rec.Value()
		for k, v := range rec.Values() {
			if s, ok := v.(string); ok && !isInternal(k) {
				out["tag:"+k] = s
			}
		}
	}
	return out, res.Err()
}

func isInternal(k string) bool { return len(k) > 0 && (k[0] == '_' || k == "result" || k == "table") }

// Close releases the underlying client resources.
func (c *InfluxClient) Close() { c.client.Close() }
