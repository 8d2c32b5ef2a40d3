// Package routing compares the fastest route between two points with an
// alternative eco route. Both candidates are turned into trip requests and
// estimated by the prediction engine; the comparison reports how much CO2
// the eco route saves.
package routing
