package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/star/astroframe/internal/eop"
	"github.com/star/astroframe/internal/frames"
	"github.com/star/astroframe/internal/geodetic"
	"github.com/star/astroframe/internal/metrics"
	"github.com/star/astroframe/internal/report"
	"github.com/star/astroframe/internal/rotation"
	"github.com/star/astroframe/internal/timeutil"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "astroframe",
		Short:         "Earth reference-frame transformations",
		Long:          "Transforms satellite states between Earth-fixed and inertial reference frames\nusing the IAU-76/FK5 and IAU-2006/2010 theories with IERS Earth-orientation data.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newFetchCmd(logger))
	cmd.AddCommand(newEOPCmd(logger))
	cmd.AddCommand(newConvertCmd(logger))
	cmd.AddCommand(newLookCmd(logger))

	return cmd
}

func newFetchCmd(logger *slog.Logger) *cobra.Command {
	var (
		sourceURL string
		kindStr   string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download an IERS Earth-orientation bulletin",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindStr)
			if err != nil {
				return err
			}

			fetcher := eop.NewFetcher(sourceURL, kind)
			logger.Info("fetching EOP data", "url", fetcher.SourceURL())

			data, err := fetcher.Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching EOP data: %w", err)
			}

			recs, err := eop.Parse(bytes.NewReader(data), kind, logger)
			if err != nil {
				return fmt.Errorf("parsing EOP data: %w", err)
			}
			ds, err := eop.NewDataset(kind, recs)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			logger.Info("saved EOP data", "path", outPath, "records", ds.Len())
			fmt.Fprint(cmd.OutOrStdout(), report.DatasetSummary(ds))
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceURL, "url", "", "source URL (default: IERS data center for the chosen kind)")
	cmd.Flags().StringVar(&kindStr, "kind", envDefault("ASTROFRAME_EOP_KIND", "iau1980"), "offset kind (iau1980|iau2000)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "finals.all", "output file path")

	return cmd
}

func newEOPCmd(logger *slog.Logger) *cobra.Command {
	var (
		eopPath  string
		kindStr  string
		epochStr string
	)

	cmd := &cobra.Command{
		Use:   "eop",
		Short: "Summarize an Earth-orientation file, optionally interpolating at an epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(eopPath, kindStr, logger)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.DatasetSummary(ds))

			if epochStr != "" {
				jd, err := parseEpoch(epochStr)
				if err != nil {
					return err
				}
				vals, err := ds.At(jd)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nat JD %.6f:\n%s", jd, report.RecordSummary(vals, ds.Kind()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&eopPath, "eop", envDefault("ASTROFRAME_EOP", "finals.all"), "Earth-orientation file path")
	cmd.Flags().StringVar(&kindStr, "kind", envDefault("ASTROFRAME_EOP_KIND", "iau1980"), "offset kind (iau1980|iau2000)")
	cmd.Flags().StringVar(&epochStr, "at", "", "epoch to interpolate at (RFC 3339 or Julian Date)")

	return cmd
}

func newConvertCmd(logger *slog.Logger) *cobra.Command {
	var (
		fromStr, toStr  string
		epochStr        string
		targetEpochStr  string
		posStr, velStr  string
		eopPath         string
		kindStr, repStr string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Transform a state vector between reference frames",
		Example: "  astroframe convert --from ITRF --to GCRF --epoch 2004-04-06T07:51:28.386009Z \\\n" +
			"    --pos -1033.4793830,7901.2952754,6380.3565958 --vel -3.225636520,-2.872451450,5.531924446 \\\n" +
			"    --eop finals.all",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := frames.ParseFrame(fromStr)
			if err != nil {
				return err
			}
			dst, err := frames.ParseFrame(toStr)
			if err != nil {
				return err
			}
			jd, err := parseEpoch(epochStr)
			if err != nil {
				return fmt.Errorf("invalid --epoch: %w", err)
			}
			pos, err := parseVec(posStr)
			if err != nil {
				return fmt.Errorf("invalid --pos: %w", err)
			}
			vel, err := parseVec(velStr)
			if err != nil {
				return fmt.Errorf("invalid --vel: %w", err)
			}

			opts, err := buildOptions(eopPath, kindStr, repStr, targetEpochStr, logger)
			if err != nil {
				return err
			}

			out, err := frames.Transform(frames.State{
				Epoch:    jd,
				Frame:    src,
				Position: pos,
				Velocity: vel,
			}, dst, opts...)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), report.FormatState(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "source frame (ITRF, PEF, TIRS, TOD, MOD, TEME, J2000, CIRS, ERS, MOD06, MJ2000, GCRF)")
	cmd.Flags().StringVar(&toStr, "to", "", "target frame")
	cmd.Flags().StringVar(&epochStr, "epoch", "", "state epoch (RFC 3339 or Julian Date, UTC)")
	cmd.Flags().StringVar(&targetEpochStr, "target-epoch", "", "evaluation epoch for an of-date target frame")
	cmd.Flags().StringVar(&posStr, "pos", "", "position, km (x,y,z)")
	cmd.Flags().StringVar(&velStr, "vel", "0,0,0", "velocity, km/s (x,y,z)")
	cmd.Flags().StringVar(&eopPath, "eop", envDefault("ASTROFRAME_EOP", ""), "Earth-orientation file; omit to run without corrections")
	cmd.Flags().StringVar(&kindStr, "kind", envDefault("ASTROFRAME_EOP_KIND", "iau1980"), "offset kind of the EOP file (iau1980|iau2000)")
	cmd.Flags().StringVar(&repStr, "rep", "dcm", "rotation representation (dcm|quat)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("epoch")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

func newLookCmd(logger *slog.Logger) *cobra.Command {
	var (
		fromStr              string
		epochStr             string
		posStr               string
		eopPath              string
		kindStr              string
		latDeg, lonDeg, altM float64
	)

	cmd := &cobra.Command{
		Use:   "look",
		Short: "Compute observer look angles to a satellite position",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := frames.ParseFrame(fromStr)
			if err != nil {
				return err
			}
			jd, err := parseEpoch(epochStr)
			if err != nil {
				return fmt.Errorf("invalid --epoch: %w", err)
			}
			pos, err := parseVec(posStr)
			if err != nil {
				return fmt.Errorf("invalid --pos: %w", err)
			}

			opts, err := buildOptions(eopPath, kindStr, "dcm", "", logger)
			if err != nil {
				return err
			}

			rot, err := frames.Rotation(src, frames.ITRF, jd, opts...)
			if err != nil {
				return err
			}
			ecef := rot.Apply(pos).Scale(1000) // km to m

			obs := geodetic.NewObserver(latDeg, lonDeg, altM)
			la := geodetic.Look(obs, ecef)

			fmt.Fprintf(cmd.OutOrStdout(), "azimuth:   %8.3f deg\nelevation: %8.3f deg\nrange:     %10.3f km\n",
				la.AzimuthDeg, la.ElevationDeg, la.RangeKm)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "GCRF", "frame of the satellite position")
	cmd.Flags().StringVar(&epochStr, "epoch", "", "epoch (RFC 3339 or Julian Date, UTC)")
	cmd.Flags().StringVar(&posStr, "pos", "", "satellite position, km (x,y,z)")
	cmd.Flags().StringVar(&eopPath, "eop", envDefault("ASTROFRAME_EOP", ""), "Earth-orientation file; omit to run without corrections")
	cmd.Flags().StringVar(&kindStr, "kind", envDefault("ASTROFRAME_EOP_KIND", "iau1980"), "offset kind of the EOP file (iau1980|iau2000)")
	cmd.Flags().Float64Var(&latDeg, "lat", 0, "observer geodetic latitude (degrees)")
	cmd.Flags().Float64Var(&lonDeg, "lon", 0, "observer longitude (degrees, east positive)")
	cmd.Flags().Float64Var(&altM, "alt", 0, "observer altitude (meters)")
	_ = cmd.MarkFlagRequired("epoch")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

// buildOptions assembles composer options from CLI flags. An empty eopPath
// yields no WithEOP option, running the engine in its degraded zero-EOP mode.
func buildOptions(eopPath, kindStr, repStr, targetEpochStr string, logger *slog.Logger) ([]frames.Option, error) {
	var opts []frames.Option

	if eopPath != "" {
		ds, err := loadDataset(eopPath, kindStr, logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, frames.WithEOP(ds))
	} else {
		logger.Warn("no EOP file supplied, running without Earth-orientation corrections")
	}

	switch strings.ToLower(repStr) {
	case "", "dcm":
		opts = append(opts, frames.WithRepresentation(rotation.DCM))
	case "quat", "quaternion":
		opts = append(opts, frames.WithRepresentation(rotation.Quat))
	default:
		return nil, fmt.Errorf("invalid --rep %q: must be dcm or quat", repStr)
	}

	if targetEpochStr != "" {
		jd, err := parseEpoch(targetEpochStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --target-epoch: %w", err)
		}
		opts = append(opts, frames.WithTargetEpoch(jd))
	}

	return opts, nil
}

func loadDataset(path, kindStr string, logger *slog.Logger) (*eop.Dataset, error) {
	kind, err := parseKind(kindStr)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening EOP file: %w", err)
	}
	defer f.Close()

	var recs []eop.Record
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		recs, err = eop.ParseCSV(f, kind, logger)
	} else {
		recs, err = eop.Parse(f, kind, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	ds, err := eop.NewDataset(kind, recs)
	if err != nil {
		return nil, err
	}

	first, last := ds.Span()
	metrics.SetEOPDatasetSpan(last - first)
	logger.Info("loaded EOP dataset", "path", path, "kind", ds.Kind().String(), "records", ds.Len())
	return ds, nil
}

// envDefault returns the value of the environment variable key, or fallback
// when it is unset or empty. Flags still override the environment.
func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseKind(s string) (eop.Kind, error) {
	switch strings.ToLower(s) {
	case "", "iau1980", "1980":
		return eop.IAU1980, nil
	case "iau2000", "2000":
		return eop.IAU2000, nil
	default:
		return 0, fmt.Errorf("invalid kind %q: must be iau1980 or iau2000", s)
	}
}

// parseEpoch accepts either an RFC 3339 timestamp or a numeric Julian Date.
func parseEpoch(s string) (float64, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return timeutil.JulianDate(t.UTC()), nil
	}
	jd, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is neither RFC 3339 nor a Julian Date", s)
	}
	return jd, nil
}

func parseVec(s string) (rotation.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rotation.Vec3{}, fmt.Errorf("want 3 comma-separated components, got %d", len(parts))
	}
	var v rotation.Vec3
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return rotation.Vec3{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		v[i] = x
	}
	return v, nil
}
