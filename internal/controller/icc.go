package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/CardProof/internal/icc"
	"github.com/SeakMengs/CardProof/internal/util"
	"github.com/gin-gonic/gin"
)

type ICCController struct {
	*baseController
}

func (ic ICCController) listResponse(ctx *gin.Context) {
	profiles, err := ic.app.ICC.List()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list ICC profiles", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"profiles": profiles})
}

func (ic ICCController) List(ctx *gin.Context) {
	ic.listResponse(ctx)
}

func (ic ICCController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("icc_file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No ICC file provided", util.GenerateErrorMessages(err, "icc_file"), nil)
		return
	}
	if fileHeader.Filename == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No file selected", util.GenerateErrorMessages(errors.New("no file selected"), "icc_file"), nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read ICC file", util.GenerateErrorMessages(err), nil)
		return
	}
	defer f.Close()

	saved, err := ic.app.ICC.Save(fileHeader.Filename, f)
	if err != nil {
		if errors.Is(err, icc.ErrInvalidProfile) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "File must have .icc extension", util.GenerateErrorMessages(err, "icc_file"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save ICC profile", util.GenerateErrorMessages(err), nil)
		return
	}

	ic.app.Logger.Infof("Uploaded ICC profile %s", saved)
	ic.listResponse(ctx)
}

func (ic ICCController) Delete(ctx *gin.Context) {
	fileName := ctx.Params.ByName("filename")
	if fileName == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Profile filename is required", util.GenerateErrorMessages(errors.New("profile filename is required"), "filename"), nil)
		return
	}

	if err := ic.app.ICC.Delete(fileName); err != nil {
		if errors.Is(err, icc.ErrProfileNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Profile not found", util.GenerateErrorMessages(err, "filename"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete ICC profile", util.GenerateErrorMessages(err), nil)
		return
	}

	ic.listResponse(ctx)
}
