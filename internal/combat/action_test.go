package combat

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eiyeron/six/internal/config"
)

func allyDef(name string, hp, maxHP uint16) config.ActorDef {
	return config.ActorDef{Name: name, HP: hp, MaxHP: maxHP, PP: 20, MaxPP: 20, Offense: 20, Defense: 22, Speed: 10, IQ: 10}
}

func testBook(t *testing.T) *ActionBook {
	t.Helper()
	cfg := config.DefaultBattle()
	return NewActionBook(&cfg, rand.New(rand.NewSource(7)))
}

func robot() *Actor {
	return NewEnemy(0, config.ActorDef{Name: "Robot", HP: 53, MaxHP: 53, Offense: 35, Defense: 10, Speed: 17, IQ: 8})
}

func TestStrike_LandsOnceAfterCast(t *testing.T) {
	target := robot()
	s := NewStrike("Bash", 1, 1.0, rand.New(rand.NewSource(1)))
	var hits []Effect
	s.OnEffect = func(e Effect) { hits = append(hits, e) }
	caster := Stats{Offense: NewStat(45)}

	assert.Equal(t, Pending, s.Execute(caster, []*Actor{target}, 0.5))
	assert.Equal(t, uint16(53), target.HP.Target())

	assert.Equal(t, Done, s.Execute(caster, []*Actor{target}, 0.5))
	hp := target.HP.Target()
	assert.GreaterOrEqual(t, hp, uint16(53-43))
	assert.LessOrEqual(t, hp, uint16(53-26))
	require.Len(t, hits, 1)
	assert.Equal(t, int(53-hp), hits[0].Amount)

	assert.Equal(t, Done, s.Execute(caster, []*Actor{target}, 1))
	assert.Equal(t, hp, target.HP.Target())
	assert.Len(t, hits, 1)
}

func TestStrike_CancelledHasNoEffect(t *testing.T) {
	target := robot()
	s := NewStrike("Bash", 1, 1.0, rand.New(rand.NewSource(1)))
	caster := Stats{Offense: NewStat(45)}

	s.Execute(caster, []*Actor{target}, 0.5)
	s.Cancel()
	assert.Equal(t, Done, s.Execute(caster, []*Actor{target}, 0.5))
	assert.Equal(t, uint16(53), target.HP.Target())
}

func TestStrike_RollingTargetShowsDamageOverTime(t *testing.T) {
	target := NewAlly(0, allyDef("One", 98, 98), 0)
	s := NewStrike("Bash", 1, 0, rand.New(rand.NewSource(3)))

	require.Equal(t, Done, s.Execute(Stats{Offense: NewStat(35)}, []*Actor{target}, 0))
	cur, _ := target.HP.CurrentAndMax()
	assert.Equal(t, uint16(98), cur)
	assert.Less(t, target.HP.Target(), uint16(98))

	target.AdvanceMeters(100)
	cur, _ = target.HP.CurrentAndMax()
	assert.Equal(t, target.HP.Target(), cur)
}

func TestActionBook_Menu(t *testing.T) {
	cfg := config.DefaultBattle()
	book := NewActionBook(&cfg, nil)
	r := NewRoster(&cfg)

	names := func(moves []config.MoveDef) []string {
		var out []string
		for _, m := range moves {
			out = append(out, m.ID)
		}
		return out
	}
	assert.Equal(t, []string{"strike", "psi_fire", "offense_up", "guard"}, names(book.Menu(r.Allies[0])))
	assert.Equal(t, []string{"strike", "guard"}, names(book.Menu(r.Allies[1])))
	assert.Equal(t, []string{"strike", "lifeup", "revive", "guard"}, names(book.Menu(r.Allies[2])))
}

func TestActionBook_Instantiate(t *testing.T) {
	book := testBook(t)
	src := ActorID{Team: TeamAlly, Index: 0}

	a, err := book.Instantiate("strike", src)
	require.NoError(t, err)
	assert.Equal(t, "Bash", a.Name())
	_, isCoster := a.(Coster)
	assert.False(t, isCoster)

	a, err = book.Instantiate("psi_fire", src)
	require.NoError(t, err)
	c, ok := a.(Coster)
	require.True(t, ok)
	assert.Equal(t, uint16(6), c.Cost())

	_, err = book.Instantiate("pk_starstorm", src)
	assert.True(t, errors.Is(err, config.ErrUnknownMove))
}

func TestActionBook_InstantiateRejectsUnknownKind(t *testing.T) {
	cfg := config.DefaultBattle()
	cfg.Moves = append(cfg.Moves, config.MoveDef{ID: "cookie", Name: "Cookie", Kind: "item"})
	book := NewActionBook(&cfg, nil)

	_, err := book.Instantiate("cookie", ActorID{})
	assert.ErrorIs(t, err, config.ErrUnimplementedAction)
}

func TestSpecial_HealUsesCasterIQ(t *testing.T) {
	book := testBook(t)
	move, ok := book.Move("lifeup")
	require.True(t, ok)
	target := NewAlly(1, allyDef("Two", 50, 115), 0)

	s := NewSpecial(move, 0, nil)
	require.Equal(t, Done, s.Execute(Stats{IQ: NewStat(20)}, []*Actor{target}, 0))
	assert.Equal(t, uint16(90), target.HP.Target())
}
