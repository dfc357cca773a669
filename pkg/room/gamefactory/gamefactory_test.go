package gamefactory

import (
	"github.com/stretchr/testify/assert"
	"pusoydos/pkg/playable"
	"pusoydos/pkg/playable/dos"
	"testing"
)

func TestGet(t *testing.T) {
	factory, err := Get("dos")
	assert.NoError(t, err)
	assert.Equal(t, dosFactory{}, factory)

	factory, err = Get("bourre")
	assert.Nil(t, factory)
	assert.EqualError(t, err, "no factory with name: bourre")
}

func Test_dosFactory_Details(t *testing.T) {
	name, err := factories["dos"].Details(playable.AdditionalData{"seed": float64(5)})
	assert.NoError(t, err)
	assert.Equal(t, "Dos", name)

	_, err = factories["dos"].Details(playable.AdditionalData{"seed": "five"})
	assert.EqualError(t, err, "seed must be a number")

	_, err = factories["dos"].Details(playable.AdditionalData{"enforceTurnOrder": "no"})
	assert.EqualError(t, err, "enforceTurnOrder must be a boolean")
}

func Test_dosFactory_CreateGame(t *testing.T) {
	a := assert.New(t)

	_, err := factories["dos"].CreateGame(nil, []int64{1, 2, 3}, nil)
	a.ErrorAs(err, new(dos.PlayerCountError))

	data := playable.AdditionalData{"seed": float64(7)}
	g1, err := factories["dos"].CreateGame(nil, []int64{1, 2, 3, 4}, data)
	a.NoError(err)
	g2, err := factories["dos"].CreateGame(nil, []int64{1, 2, 3, 4}, data)
	a.NoError(err)

	a.Equal("dos", g1.Name())
	for seat := dos.Seat(0); seat < dos.NumSeats; seat++ {
		a.Equal(g1.(*dos.Game).Round().Hand(seat), g2.(*dos.Game).Round().Hand(seat), "same seed deals the same hands")
	}

	g3, err := factories["dos"].CreateGame(nil, []int64{1, 2, 3, 4}, playable.AdditionalData{"enforceTurnOrder": false})
	a.NoError(err)

	r := g3.(*dos.Game).Round()
	other := r.NextSeat(r.FirstTurnSeat())
	_, err = r.Pass(other)
	a.ErrorIs(err, dos.ErrNoActivePlayToPassOn, "turn order is not enforced, so the pass reaches the table check")
}
