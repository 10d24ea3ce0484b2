package ui

import (
	"fmt"

	"github.com/ytget/solarsystem-gui/internal/model"
	"github.com/ytget/solarsystem-gui/internal/validate"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAdd              = "add"
	KeyRemove           = "remove"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyErrorDialog      = "error_dialog"
	KeyClearOnSuccess   = "clear_on_success"
	KeyResizable        = "resizable"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyInvalidTitle     = "invalid_title"
	KeyInvalidData      = "invalid_data"
	KeyReasonNoName     = "reason_no_name"
	KeyReasonNoColour   = "reason_no_colour"
	KeyReasonNoSize     = "reason_no_size"
	KeyReasonBadSize    = "reason_bad_size"
	KeyReasonRemoveName = "reason_remove_name"
	KeyReasonMalformed  = "reason_malformed"

	KeyFieldName     = "field_name"
	KeyFieldDistance = "field_distance"
	KeyFieldAngle    = "field_angle"
	KeyFieldSize     = "field_size"
	KeyFieldSpeed    = "field_speed"
	KeyFieldColour   = "field_colour"
	KeyFieldOrbits   = "field_orbits"
)

// fieldKeys maps model.Fields positions to their label keys
var fieldKeys = [model.FieldCount]string{
	KeyFieldName,
	KeyFieldDistance,
	KeyFieldAngle,
	KeyFieldSize,
	KeyFieldSpeed,
	KeyFieldColour,
	KeyFieldOrbits,
}

// reasonKeys maps the fixed validation reasons to translated text
var reasonKeys = map[string]string{
	validate.ReasonNoName:       KeyReasonNoName,
	validate.ReasonNoColour:     KeyReasonNoColour,
	validate.ReasonNoSize:       KeyReasonNoSize,
	validate.ReasonInvalidSize:  KeyReasonBadSize,
	validate.ReasonRemoveNoName: KeyReasonRemoveName,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// FieldLabel returns the translated label of field i
func (l *Localization) FieldLabel(i int) string {
	if !model.ValidIndex(i) {
		return ""
	}
	return l.GetText(fieldKeys[i])
}

// Reason returns the translated explanation for a rejected field
func (l *Localization) Reason(fe *validate.FieldError) string {
	if key, ok := reasonKeys[fe.Reason]; ok {
		return l.GetText(key)
	}
	if fe.Value != "" {
		return fmt.Sprintf(l.GetText(KeyReasonMalformed), l.FieldLabel(fe.Index), fe.Value)
	}
	return fe.Reason
}

// InvalidDataMessage builds the body of the error popup
func (l *Localization) InvalidDataMessage(fe *validate.FieldError) string {
	return l.GetText(KeyInvalidData) + l.Reason(fe)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Solar System GUI",
		KeyAdd:              "Add",
		KeyRemove:           "Remove",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyErrorDialog:      "Error Dialog",
		KeyClearOnSuccess:   "Clear fields after adding",
		KeyResizable:        "Resizable window",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyInvalidTitle:     "Solar System: Invalid Information!",
		KeyInvalidData:      "Invalid data entered: ",
		KeyReasonNoName:     "No name provided.",
		KeyReasonNoColour:   "No colour provided.",
		KeyReasonNoSize:     "No size provided.",
		KeyReasonBadSize:    "Invalid size (zero or below).",
		KeyReasonRemoveName: "Name is empty.",
		KeyReasonMalformed:  "Error occurred when parsing %s: %q is not a number.",
		KeyFieldName:        "Name",
		KeyFieldDistance:    "Orbital Distance",
		KeyFieldAngle:       "Orbital Angle",
		KeyFieldSize:        "Size",
		KeyFieldSpeed:       "Speed",
		KeyFieldColour:      "Colour",
		KeyFieldOrbits:      "Orbits",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Солнечная система",
		KeyAdd:              "Добавить",
		KeyRemove:           "Удалить",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyErrorDialog:      "Окно ошибок",
		KeyClearOnSuccess:   "Очищать поля после добавления",
		KeyResizable:        "Изменяемый размер окна",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyInvalidTitle:     "Солнечная система: неверные данные!",
		KeyInvalidData:      "Введены неверные данные: ",
		KeyReasonNoName:     "Не указано имя.",
		KeyReasonNoColour:   "Не указан цвет.",
		KeyReasonNoSize:     "Не указан размер.",
		KeyReasonBadSize:    "Неверный размер (ноль или меньше).",
		KeyReasonRemoveName: "Имя пустое.",
		KeyReasonMalformed:  "Ошибка разбора поля %s: %q не является числом.",
		KeyFieldName:        "Имя",
		KeyFieldDistance:    "Орбитальное расстояние",
		KeyFieldAngle:       "Орбитальный угол",
		KeyFieldSize:        "Размер",
		KeyFieldSpeed:       "Скорость",
		KeyFieldColour:      "Цвет",
		KeyFieldOrbits:      "Вращается вокруг",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Sistema Solar",
		KeyAdd:              "Adicionar",
		KeyRemove:           "Remover",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyErrorDialog:      "Diálogo de Erro",
		KeyClearOnSuccess:   "Limpar campos após adicionar",
		KeyResizable:        "Janela redimensionável",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyInvalidTitle:     "Sistema Solar: Informação Inválida!",
		KeyInvalidData:      "Dados inválidos inseridos: ",
		KeyReasonNoName:     "Nenhum nome fornecido.",
		KeyReasonNoColour:   "Nenhuma cor fornecida.",
		KeyReasonNoSize:     "Nenhum tamanho fornecido.",
		KeyReasonBadSize:    "Tamanho inválido (zero ou menor).",
		KeyReasonRemoveName: "O nome está vazio.",
		KeyReasonMalformed:  "Erro ao analisar %s: %q não é um número.",
		KeyFieldName:        "Nome",
		KeyFieldDistance:    "Distância Orbital",
		KeyFieldAngle:       "Ângulo Orbital",
		KeyFieldSize:        "Tamanho",
		KeyFieldSpeed:       "Velocidade",
		KeyFieldColour:      "Cor",
		KeyFieldOrbits:      "Orbita",
	}
}
