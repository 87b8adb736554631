package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clubdesk/club_desk_app/internal/apperrors"
	"github.com/clubdesk/club_desk_app/internal/core/domain"
	portsrepo "github.com/clubdesk/club_desk_app/internal/core/ports/repositories"
	"github.com/clubdesk/club_desk_app/internal/models"
	"github.com/clubdesk/club_desk_app/internal/utils/mapping"
	"github.com/clubdesk/club_desk_app/internal/utils/pagination"
)

const memberColumns = `
	member_id, full_name, email, phone, is_active, deactivated_at,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxMemberRepository persists club members.
type PgxMemberRepository struct {
	BaseRepository
}

// NewMemberRepository creates a new repository for member data.
func NewMemberRepository(pool PgxPool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

// SaveMember persists a new member.
func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (member_id, full_name, email, phone, is_active, deactivated_at,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.FullName, m.Email, m.Phone, m.IsActive, m.DeactivatedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert member "+m.MemberID, err)
	}
	return nil
}

// FindMemberByID retrieves a member by their identifier.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	m, err := scanMemberRow(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find member "+memberID, err)
	}
	member := mapping.ToDomainMember(*m)
	return &member, nil
}

// ListMembers retrieves members newest-first with token-based pagination.
func (r *PgxMemberRepository) ListMembers(ctx context.Context, limit int, nextToken *string) ([]domain.Member, *string, error) {
	query := `SELECT ` + memberColumns + ` FROM members`
	args := []interface{}{}
	if nextToken != nil {
		before, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` WHERE created_at < $1`
		args = append(args, before)
	}
	query += ` ORDER BY created_at DESC LIMIT ` + strconv.Itoa(limit+1) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list members", err)
	}
	defer rows.Close()

	members := make([]models.Member, 0, limit+1)
	for rows.Next() {
		m, err := scanMemberRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan member row", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate member rows", err)
	}

	var token *string
	if len(members) > limit {
		members = members[:limit]
		t := pagination.EncodeToken(members[limit-1].CreatedAt)
		token = &t
	}
	return mapping.ToDomainMemberSlice(members), token, nil
}

// UpdateMember updates a member's contact details.
func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members
		SET full_name = $2, email = $3, phone = $4, last_updated_at = $5, last_updated_by = $6
		WHERE member_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.FullName, m.Email, m.Phone, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update member "+m.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateMember marks a member inactive and stamps the deactivation time.
func (r *PgxMemberRepository) DeactivateMember(ctx context.Context, memberID string, updatedBy string) error {
	now := time.Now().UTC()
	query := `
		UPDATE members
		SET is_active = FALSE, deactivated_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE member_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, memberID, now, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate member "+memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanMemberRow(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID, &m.FullName, &m.Email, &m.Phone, &m.IsActive, &m.DeactivatedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
