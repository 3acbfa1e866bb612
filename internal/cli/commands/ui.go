package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"PharmaKeeper/internal/cli/model"
)

// errReported - ошибка уже показана пользователю уведомлением «× Error: ...».
var errReported = errors.New("reported")

const confirmDeleteText = "Are You Sure You Want To Delete This Item?"

func notifySuccess(msg string) {
	fmt.Fprintf(Out, "✓ %s\n", msg)
}

func notifyError(err error) error {
	fmt.Fprintf(Out, "× Error: %v\n", err)
	return fmt.Errorf("%w: %w", errReported, err)
}

// input - общий буферизованный читатель In, чтобы shell и подтверждения не теряли строки.
var (
	input    *bufio.Reader
	inputSrc io.Reader
)

func stdin() *bufio.Reader {
	if input == nil || inputSrc != In {
		input = bufio.NewReader(In)
		inputSrc = In
	}
	return input
}

// confirm задаёт вопрос и ждёт y/yes. EOF трактуется как отказ.
func confirm(question string) bool {
	fmt.Fprintf(Out, "%s [y/N]: ", question)
	line, _ := stdin().ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// newFlagSet - FlagSet команды: ошибки разбора превращаются в ErrUsage.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseWithID разбирает «<id> [flags]» и «[flags] <id>».
func parseWithID(fs *flag.FlagSet, args []string) (int64, error) {
	var idArg string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		idArg, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return 0, ErrUsage
	}
	rest := fs.Args()
	if idArg == "" {
		if len(rest) == 0 {
			return 0, ErrUsage
		}
		idArg, rest = rest[0], rest[1:]
	}
	if len(rest) != 0 {
		return 0, ErrUsage
	}
	return parseID(idArg)
}

// given возвращает указатель на значение только для флагов, явно переданных пользователем.
func given(fs *flag.FlagSet, name string, v *string) *string {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return v
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printMedicines(list []model.Medicine) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет лекарств")
		return
	}
	for _, m := range list {
		fmt.Fprintf(Out, "- %d  %s  type=%s  qty=%s  expiry=%s  batch=%s  price=%s\n",
			m.ID, orDash(m.Name), orDash(m.Type), orDash(m.Quantity), orDash(m.ExpiryDate), orDash(m.BatchNo), formatPrice(m.Price))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
}

func printGeneralItems(list []model.GeneralItem) {
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет товаров")
		return
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %d  %s  qty=%s  price=%s\n", it.ID, orDash(it.Name), orDash(it.Quantity), formatPrice(it.Price))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
}
