package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
	mockclock "github.com/KirkDiggler/tabletop-inventory/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/tabletop-inventory/internal/pkg/idgen/mock"
	characterrepo "github.com/KirkDiggler/tabletop-inventory/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/tabletop-inventory/internal/repositories/character/mock"
	"github.com/KirkDiggler/tabletop-inventory/internal/repositories/registry"
	"github.com/KirkDiggler/tabletop-inventory/internal/testutils/builders"
	"github.com/KirkDiggler/tabletop-inventory/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCharRepo    *characterrepomock.MockRepository
	mockClock       *mockclock.MockClock
	mockIDGenerator *idgenmock.MockGenerator
	registry        *registry.InMemory
	orchestrator    *character.Orchestrator
	ctx             context.Context
	now             time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockIDGenerator = idgenmock.NewMockGenerator(s.ctrl)
	s.registry = registry.NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	orchestrator, err := character.New(&character.Config{
		Registry:      s.registry,
		CharacterRepo: s.mockCharRepo,
		Clock:         s.mockClock,
		IDGenerator:   s.mockIDGenerator,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) register(c *entities.Character) *entities.Character {
	s.registry.Put(c)
	return c
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("missing dependencies", func() {
		_, err := character.New(&character.Config{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Registry")
		s.Contains(err.Error(), "CharacterRepo")
		s.Contains(err.Error(), "Clock")
		s.Contains(err.Error(), "IDGenerator")
	})

	s.Run("nil config", func() {
		_, err := character.New(nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	s.Run("defaults", func() {
		mocks.ExpectNow(s.mockClock, s.now)
		mocks.ExpectIDs(s.mockIDGenerator, "char-1")

		out, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Name: "Aria"})
		s.Require().NoError(err)

		c := out.Character
		s.Equal("char-1", c.ID)
		s.Equal("Aria", c.Name)
		s.Equal(entities.DefaultGameSystem, c.GameSystem)
		s.Equal(entities.DefaultLevel, c.Level)
		s.Empty(c.Inventory)
		s.Equal(entities.Currency{}, c.Currency)
		s.Equal(s.now, c.CreatedAt)
		s.Equal(s.now, c.UpdatedAt)

		got, ok := s.registry.Get("char-1")
		s.True(ok)
		s.Same(c, got)
	})

	s.Run("configured default game system", func() {
		orchestrator, err := character.New(&character.Config{
			Registry:          s.registry,
			CharacterRepo:     s.mockCharRepo,
			Clock:             s.mockClock,
			IDGenerator:       s.mockIDGenerator,
			DefaultGameSystem: "Pathfinder 2e",
		})
		s.Require().NoError(err)
		mocks.ExpectIDs(s.mockIDGenerator, "char-2")

		out, err := orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{Name: "Bram"})
		s.Require().NoError(err)
		s.Equal("Pathfinder 2e", out.Character.GameSystem)
	})

	s.Run("explicit game system", func() {
		mocks.ExpectIDs(s.mockIDGenerator, "char-3")

		out, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
			Name:       "Cyd",
			GameSystem: "D&D 5e",
		})
		s.Require().NoError(err)
		s.Equal("D&D 5e", out.Character.GameSystem)
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.CreateCharacter(s.ctx, nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	c := s.register(builders.NewCharacterBuilder().WithID("char-1").Build())

	s.Run("found", func() {
		out, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{ID: "char-1"})
		s.Require().NoError(err)
		s.Same(c, out.Character)
	})

	s.Run("not found", func() {
		out, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{ID: "nope"})
		s.Error(err)
		s.Nil(out)
		s.True(errors.IsNotFound(err))
		var e *errors.Error
		s.Require().True(errors.As(err, &e))
		s.Equal("nope", e.Meta["character_id"])
	})

	s.Run("empty ID", func() {
		_, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "character ID is required")
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.register(builders.NewCharacterBuilder().WithID("c2").WithName("Zed").Build())
	s.register(builders.NewCharacterBuilder().WithID("c1").WithName("amber").Build())

	out, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("amber", out.Characters[0].Name)
	s.Equal("Zed", out.Characters[1].Name)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter() {
	c := s.register(builders.NewCharacterBuilder().WithID("char-1").Build())
	name, level, notes := "Renamed", 7, "Met the dragon"

	out, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		ID:    "char-1",
		Name:  &name,
		Level: &level,
		Notes: &notes,
	})
	s.Require().NoError(err)
	s.Same(c, out.Character)
	s.Equal("Renamed", c.Name)
	s.Equal(7, c.Level)
	s.Equal("Met the dragon", c.Notes)
	s.Equal(entities.DefaultGameSystem, c.GameSystem, "nil fields are unchanged")
	s.Equal(builders.DefaultTime, c.UpdatedAt, "metadata edits do not touch UpdatedAt")
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.Run("registered with a file", func() {
		s.register(builders.NewCharacterBuilder().WithID("char-1").Build())
		s.mockCharRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: "char-1"}).
			Return(&characterrepo.DeleteOutput{Deleted: true}, nil)

		out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: "char-1"})
		s.Require().NoError(err)
		s.True(out.Existed)
		_, ok := s.registry.Get("char-1")
		s.False(ok)
	})

	s.Run("registered without a file", func() {
		s.register(builders.NewCharacterBuilder().WithID("char-2").Build())
		s.mockCharRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: "char-2"}).
			Return(&characterrepo.DeleteOutput{Deleted: false}, nil)

		out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: "char-2"})
		s.Require().NoError(err)
		s.True(out.Existed)
	})

	s.Run("unregistered", func() {
		s.mockCharRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: "ghost"}).
			Return(&characterrepo.DeleteOutput{Deleted: false}, nil)

		out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: "ghost"})
		s.Require().NoError(err)
		s.False(out.Existed)
	})

	s.Run("ID that cannot name a file", func() {
		s.register(builders.NewCharacterBuilder().WithID("../odd").Build())
		s.mockCharRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: "../odd"}).
			Return(nil, errors.InvalidArgument("bad id"))

		out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: "../odd"})
		s.Require().Error(err)
		s.Nil(out)
		s.True(errors.IsInvalidArgument(err))
		_, ok := s.registry.Get("../odd")
		s.True(ok)
	})

	s.Run("file removal fails", func() {
		s.register(builders.NewCharacterBuilder().WithID("char-3").Build())
		s.mockCharRepo.EXPECT().
			Delete(s.ctx, characterrepo.DeleteInput{ID: "char-3"}).
			Return(nil, errors.Internal("permission denied"))

		out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: "char-3"})
		s.Error(err)
		s.Nil(out)
		s.True(errors.IsInternal(err))
		_, ok := s.registry.Get("char-3")
		s.True(ok, "the character stays registered while its file remains")
	})
}

func (s *OrchestratorTestSuite) TestSaveCharacter() {
	s.Run("unknown ID", func() {
		_, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{ID: "nope"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("refreshes UpdatedAt and records a snapshot", func() {
		c := s.register(builders.NewCharacterBuilder().WithID("char-1").Build())
		mocks.ExpectNow(s.mockClock, s.now)
		s.mockCharRepo.EXPECT().
			Save(s.ctx, characterrepo.SaveInput{Character: c}).
			DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
				s.Equal(s.now, input.Character.UpdatedAt)
				data, err := characterrepo.Encode(input.Character)
				s.Require().NoError(err)
				return &characterrepo.SaveOutput{Path: "/saves/char-1.json", Data: data}, nil
			})

		out, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{ID: "char-1"})
		s.Require().NoError(err)
		s.Equal("/saves/char-1.json", out.Path)
		s.Equal(s.now, c.UpdatedAt)
		s.Equal(builders.DefaultTime, c.CreatedAt)

		summary, err := s.orchestrator.GetSummary(s.ctx, &character.GetSummaryInput{ID: "char-1"})
		s.Require().NoError(err)
		s.Equal(character.StatusSaved, summary.Summary.Status)
	})

	s.Run("storage failure keeps its code", func() {
		s.register(builders.NewCharacterBuilder().WithID("char-2").Build())
		mocks.ExpectNow(s.mockClock, s.now)
		s.mockCharRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("disk full"))

		out, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{ID: "char-2"})
		s.Error(err)
		s.Nil(out)
		s.True(errors.IsInternal(err))
		s.Contains(err.Error(), "failed to save character char-2")

		summary, err := s.orchestrator.GetSummary(s.ctx, &character.GetSummaryInput{ID: "char-2"})
		s.Require().NoError(err)
		s.Equal(character.StatusUnsaved, summary.Summary.Status)
	})
}

func (s *OrchestratorTestSuite) TestLoadCharacter() {
	s.Run("registers and replaces", func() {
		s.register(builders.NewCharacterBuilder().WithID("char-1").WithName("Stale").Build())
		loaded := builders.NewCharacterBuilder().WithID("char-1").WithName("Fresh").Build()
		s.mockCharRepo.EXPECT().
			Load(s.ctx, characterrepo.LoadInput{Path: "/saves/char-1.json"}).
			Return(&characterrepo.LoadOutput{Character: loaded}, nil)

		out, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{Path: "/saves/char-1.json"})
		s.Require().NoError(err)
		s.Same(loaded, out.Character)

		got, ok := s.registry.Get("char-1")
		s.Require().True(ok)
		s.Equal("Fresh", got.Name)

		summary, err := s.orchestrator.GetSummary(s.ctx, &character.GetSummaryInput{ID: "char-1"})
		s.Require().NoError(err)
		s.Equal(character.StatusSaved, summary.Summary.Status)
	})

	s.Run("assigns missing IDs", func() {
		loaded := builders.NewCharacterBuilder().
			WithID("").
			WithItems(
				builders.NewItemBuilder().WithID("").WithName("Rope").Build(),
				builders.NewItemBuilder().WithID("kept").WithName("Torch").Build(),
			).
			Build()
		s.mockCharRepo.EXPECT().
			Load(s.ctx, gomock.Any()).
			Return(&characterrepo.LoadOutput{Character: loaded}, nil)
		mocks.ExpectIDs(s.mockIDGenerator, "char-new", "item-new")

		out, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{Path: "/saves/x.json"})
		s.Require().NoError(err)
		s.Equal("char-new", out.Character.ID)
		s.Equal("item-new", out.Character.Inventory[0].ID)
		s.Equal("kept", out.Character.Inventory[1].ID)

		summary, err := s.orchestrator.GetSummary(s.ctx, &character.GetSummaryInput{ID: "char-new"})
		s.Require().NoError(err)
		s.Equal(character.StatusModified, summary.Summary.Status)
	})

	s.Run("errors keep their code", func() {
		for _, tc := range []struct {
			name  string
			err   error
			check func(error) bool
		}{
			{"missing", errors.NotFound("no file"), errors.IsNotFound},
			{"corrupt", errors.DataLossf("bad json"), errors.IsDataLoss},
			{"unreadable", errors.Internal("permission denied"), errors.IsInternal},
		} {
			s.mockCharRepo.EXPECT().
				Load(s.ctx, gomock.Any()).
				Return(nil, tc.err)

			out, err := s.orchestrator.LoadCharacter(s.ctx, &character.LoadCharacterInput{Path: "/saves/" + tc.name + ".json"})
			s.Nil(out, tc.name)
			s.True(tc.check(err), tc.name)
		}
	})
}

func (s *OrchestratorTestSuite) TestLoadAllCharacters() {
	s.Run("skips failures", func() {
		first := builders.NewCharacterBuilder().WithID("a").Build()
		third := builders.NewCharacterBuilder().WithID("c").Build()
		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(&characterrepo.ListOutput{Paths: []string{"/s/a.json", "/s/b.json", "/s/c.json"}}, nil)
		gomock.InOrder(
			s.mockCharRepo.EXPECT().
				Load(s.ctx, characterrepo.LoadInput{Path: "/s/a.json"}).
				Return(&characterrepo.LoadOutput{Character: first}, nil),
			s.mockCharRepo.EXPECT().
				Load(s.ctx, characterrepo.LoadInput{Path: "/s/b.json"}).
				Return(nil, errors.DataLossf("bad json")),
			s.mockCharRepo.EXPECT().
				Load(s.ctx, characterrepo.LoadInput{Path: "/s/c.json"}).
				Return(&characterrepo.LoadOutput{Character: third}, nil),
		)

		out, err := s.orchestrator.LoadAllCharacters(s.ctx, &character.LoadAllCharactersInput{})
		s.Require().NoError(err)
		s.Equal([]*entities.Character{first, third}, out.Characters)
		s.Require().Len(out.Skipped, 1)
		s.Equal("/s/b.json", out.Skipped[0].Path)
		s.True(errors.IsDataLoss(out.Skipped[0].Err))
	})

	s.Run("list failure", func() {
		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(nil, errors.NotFound("save directory missing"))

		_, err := s.orchestrator.LoadAllCharacters(s.ctx, &character.LoadAllCharactersInput{})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestAddAndRemoveItem() {
	c := s.register(builders.NewCharacterBuilder().WithID("char-1").AsAdventurer().Build())
	before := append([]entities.Item(nil), c.Inventory...)
	mocks.ExpectTicks(s.mockClock, s.now, time.Minute)
	mocks.ExpectIDs(s.mockIDGenerator, "item-new")

	item := entities.NewItem("Potion of Healing")
	item.Tags = nil
	added, err := s.orchestrator.AddItem(s.ctx, &character.AddItemInput{CharacterID: "char-1", Item: item})
	s.Require().NoError(err)
	s.Equal("item-new", added.Item.ID)
	s.NotNil(added.Item.Tags)
	s.Len(c.Inventory, len(before)+1)
	s.Equal(s.now, c.UpdatedAt)

	removed, err := s.orchestrator.RemoveItem(s.ctx, &character.RemoveItemInput{CharacterID: "char-1", ItemID: "item-new"})
	s.Require().NoError(err)
	s.True(removed.Removed)
	s.Equal(added.Item, removed.Item)
	s.Equal(before, c.Inventory)
	s.Equal(s.now.Add(time.Minute), c.UpdatedAt)

	_, found := c.FindItem("item-new")
	s.False(found)
}

func (s *OrchestratorTestSuite) TestAddItemKeepsExistingID() {
	s.register(builders.NewCharacterBuilder().WithID("char-1").Build())
	mocks.ExpectNow(s.mockClock, s.now)

	item := builders.NewItemBuilder().WithID("mine").Build()
	out, err := s.orchestrator.AddItem(s.ctx, &character.AddItemInput{CharacterID: "char-1", Item: item})
	s.Require().NoError(err)
	s.Equal("mine", out.Item.ID)
}

func (s *OrchestratorTestSuite) TestRemoveItemMissing() {
	s.Run("unknown item is not an error", func() {
		c := s.register(builders.NewCharacterBuilder().WithID("char-1").AsAdventurer().Build())
		mocks.ExpectNow(s.mockClock, s.now)

		out, err := s.orchestrator.RemoveItem(s.ctx, &character.RemoveItemInput{CharacterID: "char-1", ItemID: "nope"})
		s.Require().NoError(err)
		s.False(out.Removed)
		s.Equal(builders.DefaultTime, c.UpdatedAt)
	})

	s.Run("unknown character", func() {
		_, err := s.orchestrator.RemoveItem(s.ctx, &character.RemoveItemInput{CharacterID: "ghost", ItemID: "x"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestSetItemEquipped() {
	s.register(builders.NewCharacterBuilder().WithID("char-1").AsAdventurer().Build())

	s.Run("equips", func() {
		out, err := s.orchestrator.SetItemEquipped(s.ctx, &character.SetItemEquippedInput{
			CharacterID: "char-1", ItemID: "item-rations", Equipped: true,
		})
		s.Require().NoError(err)
		s.True(out.Item.Equipped)
	})

	s.Run("missing item", func() {
		_, err := s.orchestrator.SetItemEquipped(s.ctx, &character.SetItemEquippedInput{
			CharacterID: "char-1", ItemID: "nope", Equipped: true,
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty item ID", func() {
		_, err := s.orchestrator.SetItemEquipped(s.ctx, &character.SetItemEquippedInput{CharacterID: "char-1"})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSetCurrency() {
	c := s.register(builders.NewCharacterBuilder().WithID("char-1").Build())

	s.Run("sets one denomination", func() {
		out, err := s.orchestrator.SetCurrency(s.ctx, &character.SetCurrencyInput{
			CharacterID: "char-1", Denomination: entities.DenominationGold, Amount: 42,
		})
		s.Require().NoError(err)
		s.Equal(42, out.Currency.Gold)
		s.Equal(42, c.Currency.Gold)
		s.Equal(builders.DefaultTime, c.UpdatedAt)
	})

	s.Run("rejects negative amounts", func() {
		_, err := s.orchestrator.SetCurrency(s.ctx, &character.SetCurrencyInput{
			CharacterID: "char-1", Denomination: entities.DenominationGold, Amount: -1,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(42, c.Currency.Gold)
	})

	s.Run("rejects unknown denominations", func() {
		_, err := s.orchestrator.SetCurrency(s.ctx, &character.SetCurrencyInput{
			CharacterID: "char-1", Denomination: "electrum", Amount: 1,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestConvertCurrency() {
	s.Run("display only", func() {
		c := s.register(builders.NewCharacterBuilder().WithID("char-1").WithCurrency(0, 0, 0, 25).Build())

		out, err := s.orchestrator.ConvertCurrency(s.ctx, &character.ConvertCurrencyInput{
			CharacterID: "char-1", Amount: 25, From: entities.DenominationCopper, To: entities.DenominationGold,
		})
		s.Require().NoError(err)
		s.True(decimal.RequireFromString("0.25").Equal(out.Result))
		s.Equal(0, out.Credited)
		s.False(out.Applied)
		s.Equal(25, c.Currency.Copper)
	})

	s.Run("applied conversion truncates", func() {
		c := s.register(builders.NewCharacterBuilder().WithID("char-2").WithCurrency(0, 0, 0, 150).Build())

		out, err := s.orchestrator.ConvertCurrency(s.ctx, &character.ConvertCurrencyInput{
			CharacterID: "char-2", Amount: 150, From: entities.DenominationCopper, To: entities.DenominationGold, Apply: true,
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal(1, out.Credited)
		s.Equal(entities.Currency{Gold: 1}, c.Currency)
		s.Equal(c.Currency, out.Currency)
	})

	s.Run("legacy arithmetic allows a negative balance", func() {
		c := s.register(builders.NewCharacterBuilder().WithID("char-3").WithCurrency(0, 1, 0, 0).Build())

		_, err := s.orchestrator.ConvertCurrency(s.ctx, &character.ConvertCurrencyInput{
			CharacterID: "char-3", Amount: 3, From: entities.DenominationGold, To: entities.DenominationSilver, Apply: true,
		})
		s.Require().NoError(err)
		s.Equal(-2, c.Currency.Gold)
		s.Equal(30, c.Currency.Silver)
	})

	s.Run("strict rejects a negative balance", func() {
		c := s.register(builders.NewCharacterBuilder().WithID("char-4").WithCurrency(0, 1, 0, 0).Build())

		_, err := s.orchestrator.ConvertCurrency(s.ctx, &character.ConvertCurrencyInput{
			CharacterID: "char-4", Amount: 3, From: entities.DenominationGold, To: entities.DenominationSilver,
			Apply: true, Strict: true,
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(entities.Currency{Gold: 1}, c.Currency)
	})

	s.Run("bad input", func() {
		s.register(builders.NewCharacterBuilder().WithID("char-5").Build())

		_, err := s.orchestrator.ConvertCurrency(s.ctx, &character.ConvertCurrencyInput{
			CharacterID: "char-5", Amount: -1, From: "copper", To: "mithril",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Amount")
		s.Contains(err.Error(), "To")
	})
}

func (s *OrchestratorTestSuite) TestGetSummary() {
	s.register(builders.NewCharacterBuilder().WithID("char-1").AsAdventurer().Build())

	out, err := s.orchestrator.GetSummary(s.ctx, &character.GetSummaryInput{ID: "char-1"})
	s.Require().NoError(err)

	summary := out.Summary
	s.Equal("char-1", summary.CharacterID)
	s.Equal(7, summary.TotalItems)
	s.InDelta(13.0, summary.TotalWeight, 1e-9)
	s.InDelta(4017.5, summary.TotalValue, 1e-9)
	s.Equal(1560, summary.TotalCopper)
	s.Equal(character.StatusUnsaved, summary.Status)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
