package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/an-nn-t/attendance-tracker/internal/model"
	"github.com/an-nn-t/attendance-tracker/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByAttendanceNo(_ context.Context, attendanceNo int) (*model.User, error) {
	for _, u := range m.users {
		if u.AttendanceNo == attendanceNo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListStudents(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == model.RoleStudent {
			result = append(result, *u)
		}
	}
	// 按出席番号升序，模拟仓储排序
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].AttendanceNo < result[i].AttendanceNo {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.SubjectID == "" {
		subject.SubjectID = fmt.Sprintf("subj-%d", len(m.subjects)+1)
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id string) error {
	delete(m.subjects, id)
	return nil
}

// ── Mock AdjustmentRepository ──

type mockAdjustmentRepo struct {
	adjustments map[string]*model.ScheduleAdjustment
}

func newMockAdjustmentRepo() *mockAdjustmentRepo {
	return &mockAdjustmentRepo{adjustments: make(map[string]*model.ScheduleAdjustment)}
}

func (m *mockAdjustmentRepo) Create(_ context.Context, adjustment *model.ScheduleAdjustment) error {
	if adjustment.AdjustmentID == "" {
		adjustment.AdjustmentID = fmt.Sprintf("adj-%d", len(m.adjustments)+1)
	}
	m.adjustments[adjustment.AdjustmentID] = adjustment
	return nil
}

func (m *mockAdjustmentRepo) BatchCreate(ctx context.Context, adjustments []model.ScheduleAdjustment) error {
	for i := range adjustments {
		if err := m.Create(ctx, &adjustments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockAdjustmentRepo) GetByID(_ context.Context, id string) (*model.ScheduleAdjustment, error) {
	if a, ok := m.adjustments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdjustmentRepo) ListBySubject(_ context.Context, subjectID string) ([]model.ScheduleAdjustment, error) {
	var result []model.ScheduleAdjustment
	for _, a := range m.adjustments {
		if a.SubjectID == subjectID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAdjustmentRepo) Delete(_ context.Context, id string) error {
	delete(m.adjustments, id)
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []*model.AttendanceRecord
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	m.seq++
	record.AttendanceID = fmt.Sprintf("att-%d", m.seq)
	record.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.records = append(m.records, record)
	return nil
}

func (m *mockAttendanceRepo) RetractLatest(_ context.Context, userID, subjectID string) (bool, error) {
	var latest *model.AttendanceRecord
	for _, r := range m.records {
		if r.UserID == userID && r.SubjectID == subjectID && !r.IsDeleted {
			if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
				latest = r
			}
		}
	}
	if latest == nil {
		return false, nil
	}
	latest.IsDeleted = true
	return true, nil
}

func (m *mockAttendanceRepo) CountActive(_ context.Context, userID, subjectID string) (int64, error) {
	var count int64
	for _, r := range m.records {
		if r.UserID == userID && r.SubjectID == subjectID && !r.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (m *mockAttendanceRepo) ListActiveByUser(_ context.Context, userID string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.UserID == userID && !r.IsDeleted {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListActiveByUserSubject(_ context.Context, userID, subjectID string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.UserID == userID && r.SubjectID == subjectID && !r.IsDeleted {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	records map[string]*model.GradeRecord // key: user:subject:testNumber
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{records: make(map[string]*model.GradeRecord)}
}

func gradeKey(userID, subjectID string, testNumber int) string {
	return fmt.Sprintf("%s:%s:%d", userID, subjectID, testNumber)
}

func (m *mockGradeRepo) Upsert(_ context.Context, record *model.GradeRecord) error {
	key := gradeKey(record.UserID, record.SubjectID, record.TestNumber)
	if existing, ok := m.records[key]; ok {
		existing.Score = record.Score
		return nil
	}
	m.records[key] = record
	return nil
}

func (m *mockGradeRepo) ListByUser(_ context.Context, userID string) ([]model.GradeRecord, error) {
	var result []model.GradeRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockGradeRepo) ListByUserSubject(_ context.Context, userID, subjectID string) ([]model.GradeRecord, error) {
	var result []model.GradeRecord
	for _, r := range m.records {
		if r.UserID == userID && r.SubjectID == subjectID {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ── Mock ParticipationRepository ──

type mockParticipationRepo struct {
	scores map[string]*model.ParticipationScore // key: user:subject
}

func newMockParticipationRepo() *mockParticipationRepo {
	return &mockParticipationRepo{scores: make(map[string]*model.ParticipationScore)}
}

func (m *mockParticipationRepo) Upsert(_ context.Context, score *model.ParticipationScore) error {
	key := score.UserID + ":" + score.SubjectID
	if existing, ok := m.scores[key]; ok {
		existing.ReportScore = score.ReportScore
		return nil
	}
	m.scores[key] = score
	return nil
}

func (m *mockParticipationRepo) GetByUserSubject(_ context.Context, userID, subjectID string) (*model.ParticipationScore, error) {
	if s, ok := m.scores[userID+":"+subjectID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockParticipationRepo) ListByUser(_ context.Context, userID string) ([]model.ParticipationScore, error) {
	var result []model.ParticipationScore
	for _, s := range m.scores {
		if s.UserID == userID {
			result = append(result, *s)
		}
	}
	return result, nil
}

// ── 测试辅助 ──

// newTestRepo 组装全 mock 的 Repository 聚合
func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:          newMockUserRepo(),
		Subject:       newMockSubjectRepo(),
		Adjustment:    newMockAdjustmentRepo(),
		Attendance:    newMockAttendanceRepo(),
		Grade:         newMockGradeRepo(),
		Participation: newMockParticipationRepo(),
	}
}
