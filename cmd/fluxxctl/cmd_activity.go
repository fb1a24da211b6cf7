package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/white/fluxx-sales/config"
	"github.com/white/fluxx-sales/internal/activity"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/geocode"
	"github.com/white/fluxx-sales/pkg/media"
)

type activityFlags struct {
	referenceID string
	manager     string
	tsm         string
	status      string
	duration    int
	remarks     string
	image       string
	lat, lng    float64
	locate      bool
	endpoint    string
	token       string
	dryRun      bool
}

var actFlags activityFlags

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Log and inspect activities",
}

var activityLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Fill in the activity form and submit it",
	Long: `Fill in the activity form the same way the web client does.

Field visit statuses take their remarks from the reverse-geocoded position
given by --lat/--lng and may attach --image as the selfie. Every other status
requires --remarks.`,
	RunE: runActivityLog,
}

var activityStatusesCmd = &cobra.Command{
	Use:   "statuses",
	Short: "List the selectable statuses and their form mode",
	Run: func(cmd *cobra.Command, args []string) {
		printStatuses(cmd.OutOrStdout())
	},
}

func init() {
	f := activityLogCmd.Flags()
	f.StringVar(&actFlags.referenceID, "referenceid", "", "Agent reference ID (required)")
	f.StringVar(&actFlags.manager, "manager", "", "Manager")
	f.StringVar(&actFlags.tsm, "tsm", "", "Territory sales manager")
	f.StringVar(&actFlags.status, "status", "", "Activity status (required)")
	f.IntVar(&actFlags.duration, "duration", 0, "Duration in minutes (required)")
	f.StringVar(&actFlags.remarks, "remarks", "", "Remarks for non field visit statuses")
	f.StringVar(&actFlags.image, "image", "", "Selfie image file for field visits")
	f.Float64Var(&actFlags.lat, "lat", 0, "Latitude")
	f.Float64Var(&actFlags.lng, "lng", 0, "Longitude")
	f.StringVar(&actFlags.endpoint, "endpoint", "http://localhost:8080/api/v1/activities", "Activities endpoint")
	f.StringVar(&actFlags.token, "token", "", "Bearer token")
	f.BoolVar(&actFlags.dryRun, "dry-run", false, "Print the reviewed record without submitting")
	_ = activityLogCmd.MarkFlagRequired("referenceid")
	_ = activityLogCmd.MarkFlagRequired("status")
	_ = activityLogCmd.MarkFlagRequired("duration")

	activityCmd.AddCommand(activityLogCmd)
	activityCmd.AddCommand(activityStatusesCmd)
}

func runActivityLog(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadUnvalidated()
	if err != nil {
		return err
	}
	actFlags.locate = cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	form := newActivityForm(cfg, actFlags)
	defer form.Close()

	payload, err := fillActivityForm(ctx, form, actFlags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if actFlags.dryRun {
		return nil
	}

	if err := form.Confirm(ctx); err != nil {
		if errors.Is(err, activity.ErrSubmitFailed) {
			return fmt.Errorf("%s (%w)", activity.SubmitFailedMessage, err)
		}
		return err
	}
	fmt.Fprintln(out, "Activity submitted.")
	return nil
}

func newActivityForm(cfg *config.Config, fl activityFlags) *activity.Form {
	deps := activity.Dependencies{
		Camera:    activity.FileCamera{Path: fl.image},
		Geocoder:  geocode.NewNominatim(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent),
		Uploader:  media.NewCloudinary(cfg.Media.CloudName, cfg.Media.UploadPreset),
		Submitter: &activity.HTTPSubmitter{Endpoint: fl.endpoint, Token: fl.token},
		Logger:    logger,
	}
	if fl.locate {
		deps.Locator = activity.FixedLocator{At: &activity.Coordinates{Lat: fl.lat, Lng: fl.lng}}
	} else {
		deps.Locator = activity.FixedLocator{}
	}

	return activity.NewForm(activity.UserDetails{
		ReferenceID: fl.referenceID,
		Manager:     fl.manager,
		TSM:         fl.tsm,
	}, deps)
}

// fillActivityForm applies the flags in the order an agent would and opens
// the review step.
func fillActivityForm(ctx context.Context, form *activity.Form, fl activityFlags) (models.ActivityPayload, error) {
	status, err := activity.ParseStatus(fl.status)
	if err != nil {
		return models.ActivityPayload{}, err
	}
	if err := form.SetStatus(ctx, status); err != nil {
		return models.ActivityPayload{}, err
	}

	if status.Mode() == activity.ModeFieldVisit {
		if fl.remarks != "" {
			logger.Warn("--remarks is ignored for field visits")
		}
		if fl.image != "" && form.CameraActive() {
			if err := form.CaptureImage(ctx); err != nil {
				return models.ActivityPayload{}, err
			}
		}
	} else if err := form.SetRemarks(fl.remarks); err != nil {
		return models.ActivityPayload{}, err
	}

	if err := form.SetDuration(fl.duration); err != nil {
		return models.ActivityPayload{}, err
	}

	payload, err := form.Review()
	if err != nil {
		return models.ActivityPayload{}, err
	}
	return payload, nil
}

func printStatuses(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tMODE")
	for _, s := range activity.Statuses() {
		fmt.Fprintf(tw, "%s\t%s\n", s, s.Mode())
	}
	_ = tw.Flush()
}
