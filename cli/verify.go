package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/Aashish23092/id-verification/dto"
)

type identifierKind struct {
	name    string
	short   string
	example string
	service func(a *app) verifier
}

type verifier interface {
	VerifyNumber(ctx context.Context, number string) dto.VerificationResult
	VerifyText(ctx context.Context, text string) dto.VerificationResult
	VerifyDocuments(ctx context.Context, docs []dto.Document) (dto.VerificationResult, error)
}

var (
	aadhaarKind = identifierKind{
		name:    "aadhaar",
		short:   "Verify an Aadhaar number, card image or e-Aadhaar PDF",
		example: "  idverify aadhaar 2345-6789-1238\n  idverify aadhaar --image front.jpg\n  idverify aadhaar --image eaadhaar.pdf --password RAME1990",
		service: func(a *app) verifier { return a.aadhaar },
	}
	panKind = identifierKind{
		name:    "pan",
		short:   "Verify a PAN or PAN card image",
		example: "  idverify pan ABCPE1234F\n  idverify pan --image pan.jpg --json",
		service: func(a *app) verifier { return a.pan },
	}
)

type verifyOptions struct {
	images   []string
	textFile string
	password string
	json     bool
}

func newVerifyCmd(root *rootOptions, kind identifierKind) *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:     kind.name + " [NUMBER]",
		Short:   kind.short,
		Example: kind.example,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := len(args)
			if len(opts.images) > 0 {
				inputs++
			}
			if opts.textFile != "" {
				inputs++
			}
			if inputs != 1 {
				return errors.New("give exactly one of NUMBER, --image or --text-file")
			}

			a, err := newApp(cmd.Context(), root)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := runVerify(cmd.Context(), kind.service(a), args, opts)
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout(), root.noColor)
			if opts.json {
				return out.JSON(res)
			}
			out.Result(res)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.images, "image", "i", nil, "card image or PDF to OCR (repeatable)")
	cmd.Flags().StringVar(&opts.textFile, "text-file", "", "file holding OCR text produced elsewhere")
	cmd.Flags().StringVar(&opts.password, "password", "", "password for encrypted PDFs")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	return cmd
}

func runVerify(ctx context.Context, v verifier, args []string, opts *verifyOptions) (dto.VerificationResult, error) {
	switch {
	case len(args) == 1:
		return v.VerifyNumber(ctx, args[0]), nil
	case opts.textFile != "":
		data, err := os.ReadFile(opts.textFile)
		if err != nil {
			return dto.VerificationResult{}, fmt.Errorf("failed to read text file: %w", err)
		}
		return v.VerifyText(ctx, string(data)), nil
	default:
		docs, err := readDocumentFiles(opts.images, opts.password)
		if err != nil {
			return dto.VerificationResult{}, err
		}
		return v.VerifyDocuments(ctx, docs)
	}
}

func readDocumentFiles(paths []string, password string) ([]dto.Document, error) {
	docs := make([]dto.Document, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}

		mt := mimetype.Detect(data)
		if !mimetype.EqualsAny(mt.String(), "application/pdf", "image/png", "image/jpeg") {
			return nil, fmt.Errorf("%w: %s is %s", dto.ErrUnsupportedFileType, p, mt.String())
		}

		docs = append(docs, dto.Document{
			Filename: filepath.Base(p),
			MimeType: mt.String(),
			Data:     data,
			Password: password,
		})
	}
	return docs, nil
}
