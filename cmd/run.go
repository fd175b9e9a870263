package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/mindcheck/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// Pipeline warnings during the session would tear the UI; failed LLM
	// calls are still recorded in the event store.
	svc, err := newService(cmd.Context(), serviceOptions{
		Events:   st.EventRepo(),
		Status:   cmd.ErrOrStderr(),
		Warnings: io.Discard,
	})
	if err != nil {
		return fmt.Errorf("build assessment service: %w", err)
	}

	return app.Run(app.Options{
		Service: svc,
		Events:  st.EventRepo(),
	})
}
