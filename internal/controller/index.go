package controller

import (
	"net/http"

	"github.com/SeakMengs/CardProof/internal/util"
	"github.com/SeakMengs/CardProof/pkg/cardproof"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

// Index returns the options the front-end offers for card generation.
func (ic IndexController) Index(ctx *gin.Context) {
	iccProfiles, err := ic.app.ICC.List()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list ICC profiles", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"cardTypes":   []cardproof.CardType{cardproof.CardTypeFlat, cardproof.CardTypeFolded},
		"fitModes":    []cardproof.FitMode{cardproof.FitCover, cardproof.FitContain, cardproof.FitFill},
		"pdfProfiles": cardproof.PDFProfiles,
		"iccProfiles": iccProfiles,
	})
}
