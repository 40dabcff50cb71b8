package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/models"
)

// strengthWarnBelow is the score under which a chosen secret earns a
// warning. Weak secrets are warned about, not rejected: the vault is the
// user's, and so is the risk.
const strengthWarnBelow = 50

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	login := fs.String("u", "", "account login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" {
		return fmt.Errorf("register: -u login is required")
	}

	secret, err := a.readNewMasterSecret()
	if err != nil {
		return err
	}

	report := crypto.EstimateStrength(secret)
	if report.Score < strengthWarnBelow {
		fmt.Fprintf(a.out, "warning: weak master secret (score %d/100)\n", report.Score)
		for _, f := range report.Feedback {
			fmt.Fprintf(a.out, "  - %s\n", f)
		}
	}

	if err = a.services.Auth.Register(ctx, *login, secret); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %q created\n", *login)
	return nil
}

func (a *App) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	login := fs.String("u", "", "account login")
	name := fs.String("n", "", "item name")
	itemType := fs.String("T", string(models.LoginPassword), "item type (login_password|secure_note)")
	notes := fs.String("notes", "", "optional notes stored encrypted")
	generate := fs.Bool("gen", false, "generate the secret instead of prompting")
	length := fs.Int("len", 20, "generated secret length (with -gen)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *name == "" {
		return fmt.Errorf("add: -u login and -n name are required")
	}
	if !models.ItemType(*itemType).Valid() {
		return fmt.Errorf("add: unknown item type %q", *itemType)
	}

	if err := a.login(ctx, *login); err != nil {
		return err
	}

	var itemSecret string
	if *generate {
		policy := crypto.DefaultPasswordPolicy()
		policy.Length = *length

		generated, err := crypto.GeneratePassword(policy)
		if err != nil {
			return err
		}
		itemSecret = generated
		fmt.Fprintf(a.out, "generated secret: %s\n", itemSecret)
	} else {
		entered, err := a.readLine("item secret: ")
		if err != nil {
			return err
		}
		itemSecret = entered
	}

	plain := models.PlainItem{
		Name:   *name,
		Type:   models.ItemType(*itemType),
		Secret: itemSecret,
	}
	if *notes != "" {
		plain.Notes = notes
	}

	saved, err := a.services.Vault.AddItem(ctx, plain)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "stored %q as %s\n", saved.Name, saved.ClientSideID)
	return nil
}

func (a *App) cmdGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(a.out)
	login := fs.String("u", "", "account login")
	id := fs.String("id", "", "item id")
	copyToClipboard := fs.Bool("copy", false, "copy the secret to the clipboard instead of printing it")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *id == "" {
		return fmt.Errorf("get: -u login and -id item id are required")
	}

	if err := a.login(ctx, *login); err != nil {
		return err
	}

	item, err := a.services.Vault.GetItem(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s), version %d\n", item.Name, item.Type, item.Version)

	if *copyToClipboard {
		if err = clipboard.WriteAll(item.Secret); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "secret copied to clipboard")
	} else {
		fmt.Fprintf(a.out, "secret: %s\n", item.Secret)
	}

	if item.Notes != nil {
		fmt.Fprintf(a.out, "notes: %s\n", *item.Notes)
	}

	return nil
}

func (a *App) cmdUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	login := fs.String("u", "", "account login")
	id := fs.String("id", "", "item id")
	name := fs.String("n", "", "new item name (keeps the current one when empty)")
	notes := fs.String("notes", "", "new notes stored encrypted (keeps the current ones when empty)")
	keepSecret := fs.Bool("keep", false, "keep the current secret")
	generate := fs.Bool("gen", false, "generate the new secret instead of prompting")
	length := fs.Int("len", 20, "generated secret length (with -gen)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *id == "" {
		return fmt.Errorf("update: -u login and -id item id are required")
	}

	if err := a.login(ctx, *login); err != nil {
		return err
	}

	plain, err := a.services.Vault.GetItem(ctx, *id)
	if err != nil {
		return err
	}

	if *name != "" {
		plain.Name = *name
	}
	if *notes != "" {
		plain.Notes = notes
	}

	// Even with -keep the item is re-encrypted into brand-new envelopes.
	switch {
	case *keepSecret:
	case *generate:
		policy := crypto.DefaultPasswordPolicy()
		policy.Length = *length

		generated, err := crypto.GeneratePassword(policy)
		if err != nil {
			return err
		}
		plain.Secret = generated
		fmt.Fprintf(a.out, "generated secret: %s\n", plain.Secret)
	default:
		entered, err := a.readLine("new item secret: ")
		if err != nil {
			return err
		}
		plain.Secret = entered
	}

	updated, err := a.services.Vault.UpdateItem(ctx, plain)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated %q, now version %d\n", updated.Name, updated.Version)
	return nil
}

func (a *App) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	login := fs.String("u", "", "account login")
	itemType := fs.String("T", "", "filter by item type")
	prefix := fs.String("p", "", "filter by name prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" {
		return fmt.Errorf("list: -u login is required")
	}

	if err := a.login(ctx, *login); err != nil {
		return err
	}

	items, err := a.services.Vault.ListItems(ctx, models.ListFilters{
		Type:       models.ItemType(*itemType),
		NamePrefix: *prefix,
	})
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "vault is empty")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "%-36s  %-14s  v%-3d  %s\n", item.ClientSideID, item.Type, item.Version, item.Name)
	}
	return nil
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("del", flag.ContinueOnError)
	fs.SetOutput(a.out)
	login := fs.String("u", "", "account login")
	id := fs.String("id", "", "item id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *login == "" || *id == "" {
		return fmt.Errorf("del: -u login and -id item id are required")
	}

	if err := a.login(ctx, *login); err != nil {
		return err
	}

	if err := a.services.Vault.DeleteItem(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", *id)
	return nil
}

func (a *App) cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(a.out)
	length := fs.Int("len", 20, "password length")
	noUpper := fs.Bool("no-upper", false, "skip uppercase letters")
	noDigits := fs.Bool("no-digits", false, "skip digits")
	noSymbols := fs.Bool("no-symbols", false, "skip symbols")
	if err := fs.Parse(args); err != nil {
		return err
	}

	policy := crypto.DefaultPasswordPolicy()
	policy.Length = *length
	policy.Upper = !*noUpper
	policy.Digits = !*noDigits
	policy.Symbols = !*noSymbols

	password, err := crypto.GeneratePassword(policy)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, password)
	return nil
}

func (a *App) cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(a.out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := a.readLine("password to check: ")
	if err != nil {
		return err
	}

	report := crypto.EstimateStrength(password)
	fmt.Fprintf(a.out, "score: %d/100\n", report.Score)
	for _, f := range report.Feedback {
		fmt.Fprintf(a.out, "  - %s\n", f)
	}
	return nil
}

// login prompts for the master secret and authenticates, priming the crypto
// service for the rest of the command.
func (a *App) login(ctx context.Context, login string) error {
	secret, err := a.readMasterSecret()
	if err != nil {
		return err
	}
	return a.services.Auth.Login(ctx, login, secret)
}
