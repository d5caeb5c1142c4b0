package mail

import "fmt"

// HTML bodies kept inline; layout mirrors the messages the frontend expects.

func otpBody(code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #4caf50; text-align: center;">Verification Code</h2>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; text-align: center;">
    <p style="font-size: 16px; margin-bottom: 20px;">Your one-time code:</p>
    <div style="background: #fff; padding: 15px; border-radius: 5px; font-size: 24px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">%s</div>
    <p style="color: #666; font-size: 14px;">This code is valid for 5 minutes.</p>
  </div>
</div>`, code)
}

func passwordResetBody(code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #4caf50; text-align: center;">Password Reset</h2>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 10px; text-align: center;">
    <p style="font-size: 16px; margin-bottom: 20px;">Use this code to reset your password:</p>
    <div style="background: #fff; padding: 15px; border-radius: 5px; font-size: 24px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">%s</div>
    <p style="color: #666; font-size: 14px;">This code is valid for 5 minutes.</p>
  </div>
</div>`, code)
}

func courseAccessBody(name, courseName string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #4caf50;">Congratulations!</h2>
  <p>Dear %s,</p>
  <p>Your payment has been approved and access to <strong>%q</strong> is now enabled.</p>
  <p>You can now watch every video, read the notes and download the course material.</p>
</div>`, name, courseName)
}
