package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexInt — целое, принимающее в JSON и число, и числовую строку.
// Исторический контракт фронтенда непоследователен: category приходит
// то как 3, то как "3". Коэрция выполняется один раз на границе;
// нечисловое значение — ошибка анмаршалинга, которую обработчик
// превращает в 400.
type FlexInt int

// UnmarshalJSON реализует json.Unmarshaler для FlexInt
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("flexint: empty value")
	}

	// Строковая форма: снимаем кавычки и парсим содержимое
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("flexint: invalid string value %s", data)
		}
		parsed, err := strconv.Atoi(unquoted)
		if err != nil {
			return fmt.Errorf("flexint: %q is not an integer", unquoted)
		}
		*f = FlexInt(parsed)
		return nil
	}

	parsed, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("flexint: %s is not an integer", data)
	}
	*f = FlexInt(parsed)
	return nil
}

// Int возвращает значение как обычный int
func (f FlexInt) Int() int {
	return int(f)
}
