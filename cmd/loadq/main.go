package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	"github.com/xuri/excelize/v2"

	"github.com/triviahub/trivia-api/internal/config"
)

// loadq — утилита массовой загрузки вопросов из XLSX файла в базу.
// Ожидаемые колонки листа: question, answer, category, difficulty
// (первая строка-заголовок пропускается).
func main() {
	filePath := flag.String("file", "", "путь к XLSX файлу с вопросами")
	sheetName := flag.String("sheet", "", "имя листа (по умолчанию первый лист)")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: loadq -file questions.xlsx [-sheet Sheet1]")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	rows, err := readQuestionRows(*filePath, *sheetName)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *filePath, err)
	}
	if len(rows) == 0 {
		log.Fatal("No question rows found in file")
	}

	inserted, err := insertQuestions(db, rows)
	if err != nil {
		log.Fatalf("Import failed, transaction rolled back: %v", err)
	}

	fmt.Printf("Imported %d questions from %s\n", inserted, *filePath)
}

// questionRow — одна импортируемая строка
type questionRow struct {
	question   string
	answer     string
	category   int
	difficulty int
}

// readQuestionRows читает и валидирует строки из XLSX файла
func readQuestionRows(path, sheet string) ([]questionRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rawRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var rows []questionRow
	for i, raw := range rawRows {
		// Пропускаем строку-заголовок
		if i == 0 && len(raw) > 0 && strings.EqualFold(strings.TrimSpace(raw[0]), "question") {
			continue
		}
		if len(raw) == 0 {
			continue
		}
		if len(raw) < 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns (question, answer, category, difficulty), got %d", i+1, len(raw))
		}

		question := strings.TrimSpace(raw[0])
		answer := strings.TrimSpace(raw[1])
		if question == "" || answer == "" {
			return nil, fmt.Errorf("row %d: question and answer must not be empty", i+1)
		}

		category, err := strconv.Atoi(strings.TrimSpace(raw[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d: category %q is not an integer", i+1, raw[2])
		}
		difficulty, err := strconv.Atoi(strings.TrimSpace(raw[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: difficulty %q is not an integer", i+1, raw[3])
		}

		rows = append(rows, questionRow{
			question:   question,
			answer:     answer,
			category:   category,
			difficulty: difficulty,
		})
	}

	return rows, nil
}

// insertQuestions вставляет строки одной транзакцией: либо импортируется
// весь файл, либо ничего
func insertQuestions(db *sql.DB, rows []questionRow) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.Exec(row.question, row.answer, row.category, row.difficulty); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
