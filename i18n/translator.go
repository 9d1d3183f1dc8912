package i18n

// Translator retrieves localized messages for issue and path-error codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "値が必要です"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "out_of_range":
			return "範囲外です"
		case "invalid_enum":
			return "許可されていない値です"
		case "custom":
			return "検証に失敗しました"
		case "empty_path":
			return "パスが空です"
		case "key_not_found":
			return "キーが見つかりません"
		case "not_a_group":
			return "グループではありません"
		case "not_a_leaf":
			return "リーフではありません"
		case "type_mismatch":
			return "型が不正です"
		}
	default: // "en"
		switch code {
		case "required":
			return "value is required"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "pattern":
			return "does not match pattern"
		case "out_of_range":
			return "out of range"
		case "invalid_enum":
			return "not an allowed value"
		case "custom":
			return "validation failed"
		case "empty_path":
			return "path is empty"
		case "key_not_found":
			return "key not found"
		case "not_a_group":
			return "not a group"
		case "not_a_leaf":
			return "not a leaf"
		case "type_mismatch":
			return "value type mismatch"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
