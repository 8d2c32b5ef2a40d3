// Package infra contains technical adapters: the OSRM routing client, the
// MQTT publisher, metrics exporters and the zerolog logger. These packages
// depend only on the interfaces defined in the core packages.
package infra
