package controller

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/SeakMengs/CardProof/internal/renderer"
	"github.com/SeakMengs/CardProof/internal/util"
	"github.com/SeakMengs/CardProof/pkg/cardproof"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	ErrFrontImageRequired = "front image file is required"
)

type CardController struct {
	*baseController
}

// cardRequest mirrors the generation form. Booleans bind from "true"/"false"
// form values; unchecked boxes simply stay false.
type cardRequest struct {
	CardType        string `form:"card_type"`
	ImageFit        string `form:"image_fit"`
	AddBleed        bool   `form:"add_bleed"`
	PDFProfile      string `form:"pdf_profile"`
	PDFVersion      string `form:"pdf_version"`
	ICCProfile      string `form:"icc_profile"`
	UseTrueBlack    bool   `form:"use_true_black"`
	UseCMYKColors   bool   `form:"use_cmyk_colors"`
	ForceCMYK       bool   `form:"force_cmyk"`
	BackgroundColor string `form:"background_color"`
	TestMode        bool   `form:"test_mode"`
	// APIKey overrides the configured DocRaptor key for this request.
	APIKey string `form:"api_key" binding:"omitempty,strNotEmpty"`
	// ProvideAllImages enables the optional back_image and inside_image uploads.
	ProvideAllImages bool `form:"provide_all_images"`
}

func (r *cardRequest) applyDefaults() {
	if r.CardType == "" {
		r.CardType = string(cardproof.CardTypeFlat)
	}
	if r.ImageFit == "" {
		r.ImageFit = string(cardproof.FitCover)
	}
	if r.BackgroundColor == "" {
		r.BackgroundColor = "#ffffff"
	}
}

// readImageUpload reads and base64-encodes an uploaded image. Returns nil
// without error when the field is absent or empty.
func readImageUpload(ctx *gin.Context, field string) (*cardproof.Image, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if fileHeader.Filename == "" {
		return nil, nil
	}

	if !util.IsAllowedImageFile(fileHeader.Filename) {
		return nil, fmt.Errorf("invalid file type for %s. Allowed: %s", field, strings.Join(util.AllowedImageExtensions(), ", "))
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded %s: %w", field, err)
	}

	return &cardproof.Image{
		Subtype: util.ImageMIMESubtype(fileHeader.Filename),
		Base64:  base64.StdEncoding.EncodeToString(data),
	}, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// resolveICCBase64 prefers a freshly uploaded icc_file over a previously
// stored profile selected by name.
func (cc CardController) resolveICCBase64(ctx *gin.Context, req cardRequest) (string, error) {
	if fileHeader, err := ctx.FormFile("icc_file"); err == nil && fileHeader.Filename != "" {
		f, err := fileHeader.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open uploaded icc profile: %w", err)
		}
		defer f.Close()

		saved, err := cc.app.ICC.Save(fileHeader.Filename, f)
		if err != nil {
			return "", err
		}
		return cc.app.ICC.Base64(saved)
	}

	if req.ICCProfile == "" {
		return "", nil
	}

	iccBase64, err := cc.app.ICC.Base64(req.ICCProfile)
	if err != nil {
		return "", err
	}
	return iccBase64, nil
}

// buildCardHTML runs the shared half of the pipeline: bind the form, read
// the uploads, compute the layout and render the markup. On failure it has
// already written the error response and returns ok=false.
func (cc CardController) buildCardHTML(ctx *gin.Context) (html string, req cardRequest, ok bool) {
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid form data", util.GenerateErrorMessages(err), nil)
		return "", req, false
	}
	req.applyDefaults()

	front, err := readImageUpload(ctx, "image")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid image file", util.GenerateErrorMessages(err, "image"), nil)
		return "", req, false
	}
	if front == nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No image file provided", util.GenerateErrorMessages(errors.New(ErrFrontImageRequired), "image"), nil)
		return "", req, false
	}

	images := cardproof.Images{Front: *front}
	if req.ProvideAllImages {
		if images.Back, err = readImageUpload(ctx, "back_image"); err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid back image file", util.GenerateErrorMessages(err, "back_image"), nil)
			return "", req, false
		}
		// The inside image only exists on folded cards.
		if req.CardType == string(cardproof.CardTypeFolded) {
			if images.Inside, err = readImageUpload(ctx, "inside_image"); err != nil {
				util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid inside image file", util.GenerateErrorMessages(err, "inside_image"), nil)
				return "", req, false
			}
		}
	}

	iccBase64, err := cc.resolveICCBase64(ctx, req)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to resolve ICC profile", util.GenerateErrorMessages(err, "icc_profile"), nil)
		return "", req, false
	}

	layout, err := cardproof.ComputeLayout(cardproof.CardType(req.CardType), req.AddBleed, cardproof.FitMode(req.ImageFit))
	if err != nil {
		if errors.Is(err, cardproof.ErrInvalidConfiguration) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid card configuration", util.GenerateErrorMessages(err, "card_type"), nil)
			return "", req, false
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to compute card layout", util.GenerateErrorMessages(err), nil)
		return "", req, false
	}

	settings := cardproof.Settings{
		CardType:        layout.CardType,
		BleedEnabled:    req.AddBleed,
		FitMode:         cardproof.FitMode(req.ImageFit),
		PDFProfile:      req.PDFProfile,
		ICCBase64:       iccBase64,
		UseTrueBlack:    req.UseTrueBlack,
		UseCMYKColors:   req.UseCMYKColors,
		BackgroundColor: req.BackgroundColor,
	}

	html, err = cardproof.RenderHTML(layout, settings, images)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to render card markup", util.GenerateErrorMessages(err), nil)
		return "", req, false
	}

	return html, req, true
}

// Generate renders the configured card and submits it to DocRaptor,
// streaming the resulting PDF back as an attachment.
func (cc CardController) Generate(ctx *gin.Context) {
	requestId := uuid.NewString()

	html, req, ok := cc.buildCardHTML(ctx)
	if !ok {
		return
	}

	docId, err := gonanoid.New(8)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate document id", util.GenerateErrorMessages(err), nil)
		return
	}

	profileLabel := strings.ReplaceAll(req.PDFProfile, "/", "-")
	if profileLabel == "" {
		profileLabel = "default"
	}
	outputName := fmt.Sprintf("card_%s_%s.pdf", profileLabel, docId)

	princeOptions := &renderer.PrinceOptions{
		CSSDPI:     300,
		Profile:    req.PDFProfile,
		PDFVersion: req.PDFVersion,
	}
	if req.ForceCMYK {
		forceIdentity := false
		princeOptions.ForceIdentityEncoding = &forceIdentity
	}

	cc.app.Logger.Debugf("Submitting card document %s request_id=%s card_type=%s bleed=%v", outputName, requestId, req.CardType, req.AddBleed)

	pdf, err := cc.app.Renderer.CreateDoc(ctx, req.APIKey, renderer.Document{
		Name:            outputName,
		DocumentType:    "pdf",
		DocumentContent: html,
		Test:            req.TestMode,
		PrinceOptions:   princeOptions,
	})
	if err != nil {
		cc.app.Logger.Errorf("DocRaptor submission failed request_id=%s: %v", requestId, err)
		util.ResponseFailed(ctx, http.StatusBadGateway, "PDF rendering service error", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cardproof.ValidatePDF(pdf); err != nil {
		cc.app.Logger.Errorf("Rendered PDF failed validation request_id=%s: %v", requestId, err)
		util.ResponseFailed(ctx, http.StatusBadGateway, "Rendering service returned an invalid PDF", util.GenerateErrorMessages(err), nil)
		return
	}

	// Spool the PDF through the temp dir and serve it from disk.
	tmp, err := util.CreateTemp("card_*.pdf")
	if err != nil {
		cc.app.Logger.Errorf("Failed to spool rendered PDF request_id=%s: %v", requestId, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store rendered PDF", util.GenerateErrorMessages(err), nil)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		cc.app.Logger.Errorf("Failed to spool rendered PDF request_id=%s: %v", requestId, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store rendered PDF", util.GenerateErrorMessages(err), nil)
		return
	}
	tmp.Close()

	ctx.FileAttachment(tmp.Name(), outputName)
}

// Preview runs the same pipeline as Generate but stops before the DocRaptor
// call and returns the generated HTML instead.
func (cc CardController) Preview(ctx *gin.Context) {
	html, _, ok := cc.buildCardHTML(ctx)
	if !ok {
		return
	}

	util.ResponseSuccess(ctx, gin.H{"html": html})
}
