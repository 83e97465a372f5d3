package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Константы валидации
const (
	MinDisplayNameLength        = 2
	MaxDisplayNameLength        = 100
	MinRequestTitleLength       = 3
	MaxRequestTitleLength       = 200
	MinRequestDescriptionLength = 10
	MaxRequestDescriptionLength = 5000
	MaxRequirementLength        = 300
	MinProposalMessageLength    = 10
	MaxProposalMessageLength    = 2000
	MaxQuestionLength           = 500
	MaxQuestionResponseLength   = 2000
	MaxAcceptMessageLength      = 500
	MaxRejectReasonLength       = 300
	MaxFormTitleLength          = 200
	MaxFormFieldLabelLength     = 200
	MinBudget                   = 0.0
	MaxBudget                   = 100000000.0 // 100 миллионов
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	localRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !localRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateDisplayName проверяет отображаемое имя.
func ValidateDisplayName(displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return fmt.Errorf("отображаемое имя обязательно")
	}

	if err := ValidateLength("отображаемое имя", displayName, MinDisplayNameLength, MaxDisplayNameLength); err != nil {
		return err
	}

	displayNameRegex := regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ0-9\s\-_.,!?()]+$`)
	if !displayNameRegex.MatchString(displayName) {
		return fmt.Errorf("отображаемое имя содержит недопустимые символы")
	}

	return nil
}

// ValidateRequestTitle проверяет название запроса.
func ValidateRequestTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("название запроса обязательно")
	}
	return ValidateLength("название запроса", title, MinRequestTitleLength, MaxRequestTitleLength)
}

// ValidateRequestDescription проверяет описание запроса.
func ValidateRequestDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("описание запроса обязательно")
	}
	return ValidateLength("описание запроса", description, MinRequestDescriptionLength, MaxRequestDescriptionLength)
}

// ValidateProposalMessage проверяет сопроводительное сообщение предложения.
func ValidateProposalMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("сопроводительное сообщение обязательно")
	}
	return ValidateLength("сопроводительное сообщение", message, MinProposalMessageLength, MaxProposalMessageLength)
}

// ValidateBudget проверяет диапазон бюджета.
func ValidateBudget(min, max float64) error {
	if min <= MinBudget || max <= MinBudget {
		return fmt.Errorf("бюджет должен быть положительным")
	}
	if max > MaxBudget {
		return fmt.Errorf("бюджет не может превышать %.0f", MaxBudget)
	}
	if min > max {
		return fmt.Errorf("минимальный бюджет не может превышать максимальный")
	}
	return nil
}

// ValidatePassword проверяет пароль на соответствие требованиям безопасности.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("пароль должен быть не менее 8 символов")
	}

	var (
		hasUpper  = false
		hasLower  = false
		hasNumber = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("пароль должен содержать хотя бы одну заглавную букву")
	}
	if !hasLower {
		return fmt.Errorf("пароль должен содержать хотя бы одну строчную букву")
	}
	if !hasNumber {
		return fmt.Errorf("пароль должен содержать хотя бы одну цифру")
	}

	return nil
}
