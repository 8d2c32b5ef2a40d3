package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ecoroute/config"
	"github.com/kilianp07/ecoroute/core/adjust"
	"github.com/kilianp07/ecoroute/core/model"
	"github.com/kilianp07/ecoroute/core/prediction"
	"github.com/kilianp07/ecoroute/core/regression"
	"github.com/kilianp07/ecoroute/infra/logger"
)

var trip = model.NewTripRequest(0)

var (
	routeName   string
	vehicleName string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate one trip with the configured model and print the result as JSON",
	Args:  cobra.NoArgs,
	RunE:  runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.Float64Var(&trip.DistanceKm, "distance", 0, "trip distance in km")
	f.Float64Var(&trip.ElevationGainM, "elevation", 0, "elevation gain in m")
	f.Float64Var(&trip.AvgSpeedKph, "speed", model.DefaultAvgSpeedKph, "average speed in km/h")
	f.IntVar(&trip.Turns, "turns", 0, "number of turns")
	f.IntVar(&trip.Humps, "humps", 0, "number of speed humps")
	f.Float64Var(&trip.WeightKg, "weight", model.DefaultWeightKg, "vehicle mass in kg")
	f.Float64Var(&trip.TrafficIndex, "traffic", model.DefaultTrafficIndex, "traffic index")
	f.StringVar(&routeName, "route", "fast", "route strategy (fast or eco)")
	f.StringVar(&vehicleName, "vehicle", "car", "vehicle kind (car, van, bike, ev)")
	_ = predictCmd.MarkFlagRequired("distance")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	if trip.DistanceKm < 0 || trip.ElevationGainM < 0 || trip.Turns < 0 || trip.Humps < 0 {
		return fmt.Errorf("distance, elevation, turns and humps must not be negative")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	reg, err := regression.Load(cfg.Model.Path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	engine, err := prediction.NewEngine(reg, adjust.New(cfg.Adjust), nil, logger.New("predict-command"))
	if err != nil {
		return err
	}

	req := trip
	req.RouteType = model.ParseRouteType(routeName)
	req.RouteName = routeName
	req.Vehicle = model.ParseVehicle(vehicleName)
	res, err := engine.Predict(cmd.Context(), req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
