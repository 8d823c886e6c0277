package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollseq/contact"
)

var contactForm contact.Form

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Validate and send a contact message through EmailJS",
	Long: `Validates the message with the same rules as the contact form and relays it
through EmailJS. Credentials come from the contact section of the config, or
from EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY.`,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactForm.Name, "name", "", "sender name")
	contactCmd.Flags().StringVar(&contactForm.Email, "email", "", "sender email")
	contactCmd.Flags().StringVar(&contactForm.Message, "message", "", "message body")
	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := contactForm.Validate(); err != nil {
		var fe contact.FieldErrors
		if errors.As(err, &fe) {
			for _, field := range []string{contact.FieldName, contact.FieldEmail, contact.FieldMessage} {
				if msg, ok := fe[field]; ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
				}
			}
		}
		return err
	}
	if !cfg.Contact.Configured() {
		return fmt.Errorf("contact relay is not configured: set EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY")
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	relay := contact.NewEmailJS(cfg.Contact.ServiceID, cfg.Contact.TemplateID, cfg.Contact.PublicKey, cfg.Contact.Endpoint)
	sub := contact.NewSubmitter(relay)
	defer sub.Close()
	if err := sub.Submit(ctx, contactForm); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", sub.Status())
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", sub.Status())
	return nil
}
