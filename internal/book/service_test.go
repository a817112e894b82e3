package book

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook() Book {
	return Book{Title: "Livro", Author: "Autor", ISBN: "001"}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		saved := newBook()
		saved.ID = "1"
		mockRepo.EXPECT().ExistsByISBN(gomock.Any(), "001").Return(false, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), newBook()).Return(saved, nil)

		got, err := service.Create(ctx, newBook())
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)
		assert.Equal(t, "Livro", got.Title)
		assert.Equal(t, "Autor", got.Author)
		assert.Equal(t, "001", got.ISBN)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().ExistsByISBN(gomock.Any(), "001").Return(true, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Create(ctx, newBook())
		assert.ErrorIs(t, err, ErrDuplicateISBN)
		assert.Equal(t, "isbn already registered", err.Error())
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		boom := errors.New("connection reset")
		mockRepo.EXPECT().ExistsByISBN(gomock.Any(), "001").Return(false, boom)

		_, err := service.Create(ctx, newBook())
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		b := Book{ID: "1", Title: "Outro Livro", Author: "Outro Autor", ISBN: "002"}
		mockRepo.EXPECT().Save(gomock.Any(), b).Return(b, nil)

		got, err := service.Update(ctx, &b)
		require.NoError(t, err)
		assert.Equal(t, b, got)
	})

	t.Run("does not recheck isbn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		b := Book{ID: "1", Title: "Livro", Author: "Autor", ISBN: "001"}
		mockRepo.EXPECT().ExistsByISBN(gomock.Any(), gomock.Any()).Times(0)
		mockRepo.EXPECT().Save(gomock.Any(), b).Return(b, nil)

		_, err := service.Update(ctx, &b)
		require.NoError(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.Update(ctx, &Book{})
		assert.ErrorIs(t, err, ErrMissingID)

		_, err = service.Update(ctx, nil)
		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().Delete(gomock.Any(), "1").Return(nil)

		assert.NoError(t, service.Delete(ctx, &Book{ID: "1"}))
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := NewMockRepository(ctrl)
		service := NewService(mockRepo)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		assert.ErrorIs(t, service.Delete(ctx, &Book{}), ErrMissingID)
		assert.ErrorIs(t, service.Delete(ctx, nil), ErrMissingID)
	})
}

func TestService_FindByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	stored := newBook()
	stored.ID = "1"
	mockRepo.EXPECT().FindByID(gomock.Any(), "1").Return(stored, true, nil)
	mockRepo.EXPECT().FindByID(gomock.Any(), "2").Return(Book{}, false, nil)

	got, found, err := service.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, got)

	_, found, err = service.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	stored := newBook()
	stored.ID = "1"
	filter := Filter{Title: "livro"}
	page := PageRequest{Index: 0, Size: 100}
	mockRepo.EXPECT().FindPage(gomock.Any(), filter, page).Return([]Book{stored}, 1, nil)

	got, err := service.Find(context.Background(), filter, page)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, 0, got.PageIndex)
	assert.Equal(t, 100, got.PageSize)
	assert.Equal(t, 1, got.TotalPages())
}
