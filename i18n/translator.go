package i18n

// Translator retrieves localized messages for violation codes. data provides
// optional metadata to embed in the message (for example, "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return exp + " 型ではありません"
			}
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "invalid_format":
			if f := data["format"]; f != "" {
				return "形式 " + f + " に一致しません"
			}
			return "形式が不正です"
		case "unknown_key":
			return "未知のキーです"
		case "parse_error":
			return "解析エラー"
		case "csrf_failure":
			return "CSRF トークンが不正です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return "is not of type '" + exp + "'"
			}
			return "invalid type"
		case "required":
			return "is a required property"
		case "invalid_format":
			if f := data["format"]; f != "" {
				return "is not a '" + f + "'"
			}
			return "invalid format"
		case "unknown_key":
			return "is not a known property"
		case "parse_error":
			return "parse error"
		case "csrf_failure":
			return "bad CSRF token"
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

// T resolves a message for the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
