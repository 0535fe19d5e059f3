package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"coatingshop/internal/adapter/http/handlers/mocks"
	"coatingshop/internal/domain/builder"
	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDraftRouter(h *DraftHandler, actor usecase.Actor) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/drafts")
	g.POST("", h.StartDraft)
	g.GET("/:id", h.GetDraft)
	g.DELETE("/:id", h.DiscardDraft)
	g.PUT("/:id/item-form", h.SetItemForm)
	g.POST("/:id/items", h.SaveItem)
	g.POST("/:id/items/:index/edit", h.EditItem)
	g.DELETE("/:id/items/:index", h.RemoveItem)
	g.PUT("/:id/coating", h.SetCoating)
	g.POST("/:id/services/:service/toggle", h.ToggleService)
	g.PUT("/:id/promo", h.ApplyPromoCode)
	g.POST("/:id/next", h.Next)
	g.POST("/:id/submit", withActor(actor), h.SubmitDraft)
	return r
}

func draftWith(items ...entities.QuoteItem) usecase.Draft {
	w := builder.New("percentage")
	for _, it := range items {
		w = w.SetItemForm(builder.ItemForm{Type: it.Type, Size: it.Size, Quantity: "5"})
		w, _ = w.SaveItem()
	}
	return usecase.Draft{ID: "d-1", Wizard: w}
}

func TestDraftHandler_StartAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().Start(gomock.Any()).Return(draftWith(), nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "d-1" || body["step"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("expired draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().Get(gomock.Any(), "d-1").Return(usecase.Draft{}, usecase.ErrDraftNotFound)

		w := doJSON(r, http.MethodGet, "/v1/drafts/d-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("discard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().Discard(gomock.Any(), "d-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/drafts/d-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("item form accepts numeric quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		form := builder.ItemForm{Type: "wheels", Size: "medium", Quantity: "5"}
		uc.EXPECT().SetItemForm(gomock.Any(), "d-1", form).Return(draftWith(), nil)

		w := doJSON(r, http.MethodPut, "/v1/drafts/d-1/item-form", `{"type":"wheels","size":"medium","quantity":5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("save reports outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().SaveItem(gomock.Any(), "d-1").Return(draftWith(), false, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/items", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"saved":false`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("edit bad index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/items/abc/edit", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().RemoveItem(gomock.Any(), "d-1", 3).Return(usecase.Draft{}, builder.ErrItemIndex)

		w := doJSON(r, http.MethodDelete, "/v1/drafts/d-1/items/3", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		d := draftWith(entities.QuoteItem{Type: "wheels", Size: "medium"})
		w0, err := d.Wizard.EditItem(0)
		if err != nil {
			t.Fatalf("edit: %v", err)
		}
		d.Wizard = w0
		uc.EXPECT().EditItem(gomock.Any(), "d-1", 0).Return(d, nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/items/0/edit", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"editing_index":0`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestDraftHandler_CoatingServicesPromo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("coating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().SetCoating(gomock.Any(), "d-1", entities.Coating{Type: "metallic", Color: "red", Finish: "satin"}).Return(draftWith(), nil)

		w := doJSON(r, http.MethodPut, "/v1/drafts/d-1/coating", `{"type":"metallic","color":"red","finish":"satin"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().ToggleService(gomock.Any(), "d-1", "chrome").Return(usecase.Draft{}, builder.ErrUnknownService)

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/services/chrome/toggle", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("promo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().ApplyPromoCode(gomock.Any(), "d-1", "welcome10").Return(draftWith(), nil)

		w := doJSON(r, http.MethodPut, "/v1/drafts/d-1/promo", `{"code":"welcome10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Next(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)
	r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

	blocked, _ := builder.New("percentage").Next()
	uc.EXPECT().Next(gomock.Any(), "d-1").Return(usecase.Draft{ID: "d-1", Wizard: blocked}, false, nil)

	w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/next", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	errs, _ := body["errors"].(map[string]any)
	if body["advanced"] != false || body["step"] != float64(1) || errs["items"] == nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDraftHandler_SubmitDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), testOwner)

		uc.EXPECT().Submit(gomock.Any(), testOwner, "d-1").
			Return(entities.Quote{}, &usecase.IncompleteDraftError{Errors: map[string]string{"email": "Please enter a valid email address"}})

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/submit", "")
		if w.Code != http.StatusUnprocessableEntity || !strings.Contains(w.Body.String(), `"email"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), usecase.Actor{})

		uc.EXPECT().Submit(gomock.Any(), usecase.Actor{}, "d-1").Return(entities.Quote{}, usecase.ErrUnauthenticated)

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/submit", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)
		r := newDraftRouter(NewDraftHandler(uc), testOwner)

		uc.EXPECT().Submit(gomock.Any(), testOwner, "d-1").Return(sampleQuote(entities.QuoteStatusPending), nil)

		w := doJSON(r, http.MethodPost, "/v1/drafts/d-1/submit", "")
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"status":"pending"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
