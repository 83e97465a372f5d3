package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/pkg/apperror"
	"github.com/pixelhunt/design-backend/internal/usecase/form"
	"github.com/pixelhunt/design-backend/internal/validation"
)

// Step — шаг мастера составления запроса.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepRequirements
	StepPricing
	StepCustomForm
)

// Composer — пошаговый мастер составления запроса. Вперёд можно пройти
// только через валидацию текущего шага, назад — всегда и без потери
// введённых данных. Сам запрос создаётся единожды при отправке.
type Composer struct {
	clientID uuid.UUID
	step     Step

	title       string
	category    valueobject.Category
	description string
	budgetMin   float64
	budgetMax   float64
	deadline    time.Time

	requirements *RequirementsEditor
	attachments  []uuid.UUID

	rushRequest         bool
	additionalConcepts  int
	additionalRevisions int

	binding *form.Binding
}

func NewComposer(clientID uuid.UUID) *Composer {
	return &Composer{
		clientID:     clientID,
		step:         StepBasicInfo,
		requirements: NewRequirementsEditor(),
		binding:      form.NewBinding(),
	}
}

func (c *Composer) CurrentStep() Step {
	return c.step
}

// SetBasicInfo сохраняет данные первого шага. Проверка выполняется при
// переходе вперёд, поэтому черновик может временно содержать что угодно.
func (c *Composer) SetBasicInfo(title, category, description string, budgetMin, budgetMax float64, deadline time.Time) {
	c.title = title
	c.category = valueobject.Category(category)
	c.description = description
	c.budgetMin = budgetMin
	c.budgetMax = budgetMax
	c.deadline = deadline
}

// Requirements открывает редактор требований второго шага.
func (c *Composer) Requirements() *RequirementsEditor {
	return c.requirements
}

// SetAttachments запоминает идентификаторы загруженных файлов.
func (c *Composer) SetAttachments(mediaIDs []uuid.UUID) {
	c.attachments = make([]uuid.UUID, len(mediaIDs))
	copy(c.attachments, mediaIDs)
}

// SetPricing сохраняет выбранные доплаты третьего шага.
func (c *Composer) SetPricing(rushRequest bool, additionalConcepts, additionalRevisions int) {
	c.rushRequest = rushRequest
	c.additionalConcepts = additionalConcepts
	c.additionalRevisions = additionalRevisions
}

// PricePreview пересчитывает стоимость по текущему черновику. Вызывается на
// каждое изменение доплат, поэтому расчёт не имеет побочных эффектов.
func (c *Composer) PricePreview() valueobject.Quote {
	return valueobject.ComputeQuote(c.budgetMax, c.rushRequest, c.additionalConcepts, c.additionalRevisions)
}

// Binding открывает привязку авторской формы четвёртого шага.
func (c *Composer) Binding() *form.Binding {
	return c.binding
}

// Next переходит к следующему шагу после валидации текущего. На последнем
// шаге ничего не делает.
func (c *Composer) Next() error {
	switch c.step {
	case StepBasicInfo:
		if err := c.validateBasicInfo(); err != nil {
			return err
		}
	case StepRequirements, StepPricing:
		// Требования и доплаты корректны в любом состоянии: пустые строки
		// отфильтровываются, количества ограничиваются при расчёте.
	case StepCustomForm:
		return nil
	}

	c.step++
	return nil
}

// Back возвращает на предыдущий шаг. Данные всех шагов сохраняются.
func (c *Composer) Back() {
	if c.step > StepBasicInfo {
		c.step--
	}
}

// Build собирает итоговый запрос из черновика. Черновик при этом не
// изменяется: повторная попытка после ошибки допустима.
func (c *Composer) Build() (*entity.Request, error) {
	if err := c.validateBasicInfo(); err != nil {
		return nil, err
	}
	if err := c.binding.Validate(); err != nil {
		return nil, err
	}

	budget, err := valueobject.NewBudget(c.budgetMin, c.budgetMax)
	if err != nil {
		return nil, err
	}

	req, err := entity.NewRequest(
		c.clientID,
		c.title,
		c.category,
		c.description,
		budget,
		c.deadline,
		c.requirements.Values(),
		c.rushRequest,
		c.additionalConcepts,
		c.additionalRevisions,
		c.binding.FormID(),
		c.binding.Answers(),
	)
	if err != nil {
		return nil, err
	}

	for _, mediaID := range c.attachments {
		req.Attachments = append(req.Attachments, entity.RequestAttachment{
			ID:        uuid.New(),
			RequestID: req.ID,
			MediaID:   mediaID,
			CreatedAt: time.Now(),
		})
	}

	return req, nil
}

// Reset возвращает мастер к первому шагу с пустым черновиком.
func (c *Composer) Reset() {
	clientID := c.clientID
	*c = *NewComposer(clientID)
}

func (c *Composer) validateBasicInfo() error {
	if err := validation.ValidateRequestTitle(c.title); err != nil {
		return apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if !c.category.IsValid() {
		return apperror.New(apperror.ErrCodeValidation, "некорректная категория запроса")
	}
	if err := validation.ValidateRequestDescription(c.description); err != nil {
		return apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateBudget(c.budgetMin, c.budgetMax); err != nil {
		return apperror.New(apperror.ErrCodeValidation, err.Error())
	}
	if c.deadline.Before(entity.MinDeadline(time.Now())) {
		return apperror.New(apperror.ErrCodeValidation, "дедлайн должен быть не раньше завтрашнего дня")
	}
	return nil
}
