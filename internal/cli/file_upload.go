package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
)

// NewFileUploadCmd создаёт группу команд для загрузки файлов.
func NewFileUploadCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file-upload",
		Short: "File upload operations",
	}

	cmd.AddCommand(
		newFileUploadCreateCmd(clientFn, outputFn),
		newFileUploadSendCmd(clientFn, outputFn),
		newFileUploadCompleteCmd(clientFn, outputFn),
		newFileUploadGetCmd(clientFn, outputFn),
		newFileUploadListCmd(clientFn, outputFn, pageFn),
		newFileUploadUploadCmd(clientFn, outputFn),
	)

	return cmd
}

func newFileUploadCreateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var params notion.CreateFileUploadParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a file upload session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check := uploadParams{
				Mode:          params.Mode,
				NumberOfParts: params.NumberOfParts,
				ExternalURL:   params.ExternalURL,
			}
			if err := check.Validate(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.CreateFileUpload(cmd.Context(), params)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&params.Mode, "mode", "", "Upload mode: single_part, multi_part, or external_url (required)")
	cmd.Flags().StringVar(&params.Filename, "filename", "", "Filename for the upload")
	cmd.Flags().StringVar(&params.ContentType, "content-type", "", "MIME content type")
	cmd.Flags().IntVar(&params.NumberOfParts, "number-of-parts", 0, "Number of parts (multi_part mode)")
	cmd.Flags().StringVar(&params.ExternalURL, "external-url", "", "External URL (external_url mode)")
	cmd.MarkFlagRequired("mode")

	return cmd
}

func newFileUploadSendCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var (
		file       string
		partNumber int
	)

	cmd := &cobra.Command{
		Use:   "send ID",
		Short: "Send a file to an upload session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var part *int
			if cmd.Flags().Changed("part-number") {
				part = &partNumber
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.SendFileUpload(cmd.Context(), args[0], file, part)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the file to upload (required)")
	cmd.Flags().IntVar(&partNumber, "part-number", 0, "Part number (multi_part mode)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newFileUploadCompleteCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Complete a file upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.CompleteFileUpload(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newFileUploadGetCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Retrieve a file upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrieveFileUpload(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newFileUploadListCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List file uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.ListFileUploads(cmd.Context(), status, pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")

	return cmd
}

func newFileUploadUploadCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file in one step (create + send + complete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}
			out := outputFn()

			result, err := client.UploadFile(cmd.Context(), args[0], contentType, func(s notion.UploadStep) {
				switch s.Name {
				case notion.StepCreate:
					out.Info(fmt.Sprintf("Creating upload session for '%s'...", s.Filename))
				case notion.StepSend:
					out.Info(fmt.Sprintf("Uploading file to session '%s'...", s.UploadID))
				case notion.StepComplete:
					out.Info("Completing upload...")
				}
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("File '%s' uploaded successfully", filepath.Base(args[0])))
			return out.Print(result)
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "MIME content type")

	return cmd
}
