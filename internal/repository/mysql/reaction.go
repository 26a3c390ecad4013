package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Deshan005/AdvancedServerSideCW2/domain"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository/mysql/model"
)

type reactionRepository struct {
	DB *gorm.DB
}

var (
	_ domain.ReactionRepository = (*reactionRepository)(nil)
	_ domain.CommentRepository  = (*reactionRepository)(nil)
)

// NewReactionRepository creates the repository backing both reactions and
// comments; the two tables always travel together on the blog-details page.
func NewReactionRepository(db *gorm.DB) *reactionRepository {
	return &reactionRepository{db}
}

// Upsert inserts the reaction row, or overwrites the kind when the
// (blog_id, user_email) key already exists. Re-reacting never adds a row.
func (m *reactionRepository) Upsert(ctx context.Context, r domain.Reaction) error {
	reaction := model.NewReactionFromDomain(r)
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blog_id"}, {Name: "user_email"}},
			DoUpdates: clause.AssignmentColumns([]string{"reaction"}),
		}).
		Create(&reaction).
		Error
}

// Counts aggregates both kinds in one statement. A blog nobody reacted to
// yields zero counts, not an absence.
func (m *reactionRepository) Counts(ctx context.Context, blogID int64) (domain.ReactionCounts, error) {
	var counts domain.ReactionCounts
	err := m.DB.WithContext(ctx).
		Model(&model.Reaction{}).
		Select("COALESCE(SUM(reaction = 'like'), 0) AS likes, COALESCE(SUM(reaction = 'dislike'), 0) AS dislikes").
		Where("blog_id = ?", blogID).
		Scan(&counts).
		Error
	return counts, err
}

func (m *reactionRepository) UserReaction(ctx context.Context, blogID int64, userEmail string) (domain.ReactionKind, error) {
	var reaction model.Reaction
	err := m.DB.WithContext(ctx).
		First(&reaction, "blog_id = ? AND user_email = ?", blogID, userEmail).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReactionNone, nil
		}
		return domain.ReactionNone, err
	}
	return domain.ReactionKind(reaction.Reaction), nil
}

func (m *reactionRepository) Store(ctx context.Context, c *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(c)
	result := m.DB.WithContext(ctx).Create(commentModel)
	if result.Error != nil {
		return result.Error
	}
	c.ID = commentModel.ID
	c.CreatedAt = commentModel.CreatedAt
	return nil
}

func (m *reactionRepository) FetchByBlog(ctx context.Context, blogID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := m.DB.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}
