package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"aqarverse/internal/domain/entity"
	"aqarverse/internal/infrastructure/websocket"
	"aqarverse/internal/usecase"
	"aqarverse/pkg/logger"
)

// StreamHandler upgrades requests to WebSocket connections fed by Firestore
// snapshot listeners. Each connection follows one stream and tears its
// listener down on disconnect.
type StreamHandler struct {
	propertyUseCase *usecase.PropertyUseCase
	favoriteUseCase *usecase.FavoriteUseCase
	manager         *websocket.Manager
	upgrader        gorilla.Upgrader
}

func NewStreamHandler(
	propertyUseCase *usecase.PropertyUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	manager *websocket.Manager,
) *StreamHandler {
	return &StreamHandler{
		propertyUseCase: propertyUseCase,
		favoriteUseCase: favoriteUseCase,
		manager:         manager,
		upgrader: gorilla.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// MyProperties streams the caller's own listings.
func (h *StreamHandler) MyProperties(c echo.Context) error {
	uid := c.Get("uid").(string)

	return h.serve(c, uid, "my-properties", func(ctx context.Context) (<-chan interface{}, error) {
		updates, err := h.propertyUseCase.WatchByOwner(ctx, uid)
		if err != nil {
			return nil, err
		}
		return wrapPropertyStream(ctx, updates), nil
	})
}

// ReviewQueue streams pending listings for admins.
func (h *StreamHandler) ReviewQueue(c echo.Context) error {
	uid := c.Get("uid").(string)

	return h.serve(c, uid, "review-queue", func(ctx context.Context) (<-chan interface{}, error) {
		updates, err := h.propertyUseCase.WatchReviewQueue(ctx)
		if err != nil {
			return nil, err
		}
		return wrapPropertyStream(ctx, updates), nil
	})
}

// Favorites streams the caller's favorite marker ids.
func (h *StreamHandler) Favorites(c echo.Context) error {
	uid := c.Get("uid").(string)

	return h.serve(c, uid, "favorites", func(ctx context.Context) (<-chan interface{}, error) {
		updates, err := h.favoriteUseCase.WatchIDs(ctx, uid)
		if err != nil {
			return nil, err
		}

		out := make(chan interface{}, 1)
		go func() {
			defer close(out)
			for {
				select {
				case ids, ok := <-updates:
					if !ok {
						return
					}
					out <- ids
				case <-ctx.Done():
					return
				}
			}
		}()
		return out, nil
	})
}

func (h *StreamHandler) serve(c echo.Context, uid, stream string, watch func(context.Context) (<-chan interface{}, error)) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client, ctx := h.manager.NewClient(c.Request().Context(), uid, stream, conn)

	updates, err := watch(ctx)
	if err != nil {
		h.manager.Unregister <- client
		conn.Close()
		return nil
	}

	// Sole writer of client.Send; closing it here lets WritePump finish
	// with a proper close frame once the watch winds down.
	go func() {
		defer close(client.Send)
		for update := range updates {
			payload, err := json.Marshal(update)
			if err != nil {
				logger.Warn("Failed to encode %s frame: %v", stream, err)
				continue
			}
			select {
			case client.Send <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	go client.WritePump()
	client.ReadPump(h.manager)
	return nil
}

func wrapPropertyStream(ctx context.Context, updates <-chan []*entity.Property) <-chan interface{} {
	out := make(chan interface{}, 1)
	go func() {
		defer close(out)
		for {
			select {
			case properties, ok := <-updates:
				if !ok {
					return
				}
				out <- properties
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
