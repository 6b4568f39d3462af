package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgablast/sembconnect/internal/entities"
	"github.com/orgablast/sembconnect/internal/service"
	"github.com/orgablast/sembconnect/internal/storage"
	storagemock "github.com/orgablast/sembconnect/internal/storage/mock"
)

var (
	errTest = errors.New("test error")

	now = time.Date(2025, 11, 5, 7, 25, 7, 0, time.UTC)

	admin = entities.User{
		ID:        "user-1",
		Name:      "Alex Hartman",
		AvatarURL: "https://example.com/a.png",
		Role:      entities.RoleAdmin,
	}
	employee = entities.User{
		ID:        "user-2",
		Name:      "Yogesh Patel",
		AvatarURL: "https://example.com/y.png",
		Role:      entities.RoleEmployee,
	}
)

func newService(t *testing.T) (service.Service, *storagemock.MockStorage) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := storagemock.NewMockStorage(ctrl)

	return NewWithClock(st, func() time.Time { return now }), st
}

func TestSrv_CreatePost(t *testing.T) {
	s, st := newService(t)

	var created entities.Post
	st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Post) error {
		created = p
		return nil
	})

	p, err := s.CreatePost(context.Background(), admin, service.CreatePostParams{
		Category: entities.CategoryOrganization,
		Title:    "  Town Hall  ",
		Content:  "Friday at noon.",
	})
	require.NoError(t, err)

	assert.Equal(t, created, *p)
	assert.Equal(t, "bulletin-1762327507000", p.ID)
	assert.Equal(t, "Town Hall", p.Title)
	assert.Equal(t, entities.Author{Name: admin.Name, AvatarURL: admin.AvatarURL}, p.Author)
	assert.Equal(t, now, p.CreatedAt)
	assert.NotNil(t, p.LikedBy)
	assert.NotNil(t, p.Comments)
}

func TestSrv_CreatePost_uniqueIDsWithinMillisecond(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := s.CreatePost(context.Background(), admin, service.CreatePostParams{
		Category: entities.CategoryEmployee,
		Title:    "one",
		Content:  "one",
	})
	require.NoError(t, err)

	second, err := s.CreatePost(context.Background(), admin, service.CreatePostParams{
		Category: entities.CategoryEmployee,
		Title:    "two",
		Content:  "two",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSrv_CreatePost_validation(t *testing.T) {
	tt := []struct {
		name  string
		actor entities.User
		p     service.CreatePostParams
		err   error
	}{
		{
			name:  "blank title",
			actor: admin,
			p:     service.CreatePostParams{Category: entities.CategoryEmployee, Title: "   ", Content: "x"},
			err:   service.ErrInvalidRequest,
		},
		{
			name:  "blank content",
			actor: admin,
			p:     service.CreatePostParams{Category: entities.CategoryEmployee, Title: "x", Content: ""},
			err:   service.ErrInvalidRequest,
		},
		{
			name:  "bad category",
			actor: admin,
			p:     service.CreatePostParams{Category: "Global", Title: "x", Content: "x"},
			err:   service.ErrInvalidRequest,
		},
		{
			name:  "employee posting organization content",
			actor: employee,
			p:     service.CreatePostParams{Category: entities.CategoryOrganization, Title: "x", Content: "x"},
			err:   service.ErrForbidden,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newService(t)

			_, err := s.CreatePost(context.Background(), tc.actor, tc.p)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSrv_DeletePost(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().DeletePost(gomock.Any(), "bulletin-1").Return(nil)
	require.NoError(t, s.DeletePost(context.Background(), admin, "bulletin-1"))

	assert.ErrorIs(t, s.DeletePost(context.Background(), employee, "bulletin-1"), service.ErrForbidden)

	st.EXPECT().DeletePost(gomock.Any(), "missing").Return(storage.ErrNotFound)
	assert.ErrorIs(t, s.DeletePost(context.Background(), admin, "missing"), service.ErrNotFound)
}

func TestSrv_TogglePostLike(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().MutatePost(gomock.Any(), "bulletin-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f func(entities.Post) entities.Post) (*entities.Post, error) {
			out := f(entities.Post{ID: "bulletin-1", LikedBy: []string{}})
			return &out, nil
		})

	p, err := s.TogglePostLike(context.Background(), employee, "bulletin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Likes)
	assert.Equal(t, []string{employee.ID}, p.LikedBy)

	st.EXPECT().MutatePost(gomock.Any(), "missing", gomock.Any()).Return(nil, storage.ErrNotFound)
	_, err = s.TogglePostLike(context.Background(), employee, "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSrv_AddPostComment(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().MutatePost(gomock.Any(), "bulletin-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f func(entities.Post) entities.Post) (*entities.Post, error) {
			out := f(entities.Post{ID: "bulletin-1"})
			return &out, nil
		})

	p, err := s.AddPostComment(context.Background(), employee, "bulletin-1", " nice ")
	require.NoError(t, err)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, "nice", p.Comments[0].Text)
	assert.Equal(t, employee.Name, p.Comments[0].User.Name)
	assert.Equal(t, now, p.Comments[0].Timestamp)

	_, err = s.AddPostComment(context.Background(), employee, "bulletin-1", "   ")
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestSrv_CreatePoll(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().CreatePoll(gomock.Any(), gomock.Any()).Return(nil)

	p, err := s.CreatePoll(context.Background(), admin, service.CreatePollParams{
		Question: "Where to?",
		Options:  []string{"Mountains", "  ", "Beach"},
		Category: entities.CategoryOrganization,
	})
	require.NoError(t, err)

	require.Len(t, p.Options, 2)
	assert.Equal(t, p.ID+"-option-1", p.Options[0].ID)
	assert.Equal(t, "Mountains", p.Options[0].Text)
	assert.Equal(t, p.ID+"-option-3", p.Options[1].ID)
	assert.NotNil(t, p.VotedBy)
}

func TestSrv_CreatePoll_tooFewOptions(t *testing.T) {
	s, _ := newService(t)

	_, err := s.CreatePoll(context.Background(), admin, service.CreatePollParams{
		Question: "Where to?",
		Options:  []string{"Mountains", "   "},
		Category: entities.CategoryEmployee,
	})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestSrv_Vote(t *testing.T) {
	s, st := newService(t)

	poll := entities.Poll{
		ID: "poll-1",
		Options: []entities.PollOption{
			{ID: "poll-1-option-1"},
			{ID: "poll-1-option-2"},
		},
		VotedBy: []string{},
	}

	st.EXPECT().MutatePoll(gomock.Any(), "poll-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f func(entities.Poll) entities.Poll) (*entities.Poll, error) {
			out := f(poll)
			return &out, nil
		})

	out, err := s.Vote(context.Background(), employee, "poll-1", "poll-1-option-2")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Options[1].Votes)
	assert.Equal(t, []string{employee.ID}, out.VotedBy)
}

func TestSrv_ListGrievances(t *testing.T) {
	all := []entities.Grievance{
		{ID: "grievance-2", EmployeeID: employee.ID, Subject: "Parking", CreatedAt: now},
		{ID: "grievance-1", EmployeeID: "user-9", Subject: "Noise", CreatedAt: now.Add(-time.Hour)},
	}

	t.Run("admin sees everything", func(t *testing.T) {
		s, st := newService(t)
		st.EXPECT().ListGrievances(gomock.Any()).Return(all, nil)

		out, err := s.ListGrievances(context.Background(), admin, "")
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("employee sees only their own", func(t *testing.T) {
		s, st := newService(t)
		st.EXPECT().ListGrievances(gomock.Any()).Return(all, nil)

		out, err := s.ListGrievances(context.Background(), employee, "")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "grievance-2", out[0].ID)
	})
}

func TestSrv_GetGrievance_forbidden(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().GetGrievance(gomock.Any(), "grievance-1").Return(&entities.Grievance{
		ID:         "grievance-1",
		EmployeeID: "user-9",
	}, nil)

	_, err := s.GetGrievance(context.Background(), employee, "grievance-1")
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestSrv_ChangeGrievanceStatus(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().MutateGrievance(gomock.Any(), "grievance-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f func(entities.Grievance) entities.Grievance) (*entities.Grievance, error) {
			out := f(entities.Grievance{ID: "grievance-1", Status: entities.GrievancePending})
			return &out, nil
		})

	g, err := s.ChangeGrievanceStatus(context.Background(), admin, "grievance-1", service.ChangeGrievanceStatusParams{
		Status:  entities.GrievanceResolved,
		Comment: "Fixed the ventilation.",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.GrievanceResolved, g.Status)
	require.NotNil(t, g.ResolvedAt)
	assert.Equal(t, now, *g.ResolvedAt)
	require.Len(t, g.Comments, 1)
	assert.Equal(t, entities.GrievanceResolved, g.Comments[0].Status)
}

func TestSrv_ChangeGrievanceStatus_validation(t *testing.T) {
	s, _ := newService(t)

	_, err := s.ChangeGrievanceStatus(context.Background(), employee, "grievance-1", service.ChangeGrievanceStatusParams{
		Status: entities.GrievanceResolved,
	})
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = s.ChangeGrievanceStatus(context.Background(), admin, "grievance-1", service.ChangeGrievanceStatusParams{
		Status: entities.GrievanceResolved,
	})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = s.ChangeGrievanceStatus(context.Background(), admin, "grievance-1", service.ChangeGrievanceStatusParams{
		Status: "Escalated",
	})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestSrv_AddGrievanceComment(t *testing.T) {
	s, st := newService(t)

	g := entities.Grievance{ID: "grievance-1", EmployeeID: employee.ID, Status: entities.GrievanceInProgress}

	st.EXPECT().GetGrievance(gomock.Any(), "grievance-1").Return(&g, nil)
	st.EXPECT().MutateGrievance(gomock.Any(), "grievance-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f func(entities.Grievance) entities.Grievance) (*entities.Grievance, error) {
			out := f(g)
			return &out, nil
		})

	out, err := s.AddGrievanceComment(context.Background(), employee, "grievance-1", "Any update?")
	require.NoError(t, err)
	require.Len(t, out.Comments, 1)
	assert.Equal(t, entities.GrievanceInProgress, out.Comments[0].Status)
	assert.Equal(t, employee.Name, out.Comments[0].Author.Name)
}

func TestSrv_CreateAppreciation(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().GetUser(gomock.Any(), admin.ID).Return(&admin, nil)
	st.EXPECT().CreateAppreciation(gomock.Any(), gomock.Any()).Return(nil)

	a, err := s.CreateAppreciation(context.Background(), employee, service.CreateAppreciationParams{
		ToUserID: admin.ID,
		Message:  "Thanks for the quick review!",
	})
	require.NoError(t, err)

	assert.Equal(t, employee.ID, a.From.ID)
	assert.Equal(t, admin.ID, a.To.ID)
	assert.NotNil(t, a.LikedBy)
}

func TestSrv_CreateAppreciation_unknownRecipient(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().GetUser(gomock.Any(), "user-9").Return(nil, storage.ErrNotFound)

	_, err := s.CreateAppreciation(context.Background(), employee, service.CreateAppreciationParams{
		ToUserID: "user-9",
		Message:  "hi",
	})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestSrv_Stats(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().ListPosts(gomock.Any()).Return([]entities.Post{
		{ID: "bulletin-1", Likes: 2, Comments: []entities.Comment{{}, {}}},
		{ID: "bulletin-2", Likes: 1},
	}, nil)
	st.EXPECT().ListPolls(gomock.Any()).Return([]entities.Poll{{ID: "poll-1"}}, nil)
	st.EXPECT().ListGrievances(gomock.Any()).Return([]entities.Grievance{
		{ID: "grievance-1", Status: entities.GrievancePending},
		{ID: "grievance-2", Status: entities.GrievanceResolved},
	}, nil)
	st.EXPECT().ListSuggestions(gomock.Any()).Return([]entities.Suggestion{
		{ID: "suggestion-1", Upvotes: 3, Comments: []entities.Comment{{}}},
	}, nil)
	st.EXPECT().ListAppreciations(gomock.Any()).Return([]entities.Appreciation{
		{ID: "appreciation-1", Likes: 4},
	}, nil)

	out, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &service.Stats{
		Posts:             2,
		Polls:             1,
		Grievances:        2,
		PendingGrievances: 1,
		Suggestions:       1,
		Appreciations:     1,
		Comments:          3,
		Likes:             10,
	}, out)
}

func TestSrv_listErrors(t *testing.T) {
	s, st := newService(t)

	st.EXPECT().ListPosts(gomock.Any()).Return(nil, errTest)
	_, err := s.ListPosts(context.Background(), service.ListPostsParams{})
	assert.Error(t, err)
}
