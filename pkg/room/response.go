package room

import (
	"pusoydos/pkg/playable"
)

type clientState struct {
	TableID string  `json:"tableId"`
	Seated  []int64 `json:"seated"`
	InGame  bool    `json:"inGame"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
